package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bizmatch/backend/internal/api"
	"github.com/bizmatch/backend/internal/service"
	"github.com/bizmatch/backend/internal/testhelpers"
)

func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret")
	profileSvc := service.NewProfileService(db, nil)
	matchSvc := service.NewMatchService(db, nil)

	router := gin.New()
	router.Use(gin.Recovery())
	api.NewHandlers(authSvc, profileSvc, matchSvc).RegisterRoutes(router, nil)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email, userType string) (userID, token string) {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "password123",
		"userType":  userType,
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.User.ID, resp.Token
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	router, _ := setupAPITest(t)

	w := doJSON(t, router, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Server is running"}`, w.Body.String())
}

func TestProfileRequiresToken(t *testing.T) {
	router, _ := setupAPITest(t)

	w := doJSON(t, router, "GET", "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", errorOf(t, w))
}

func TestProfileRejectsBadToken(t *testing.T) {
	router, _ := setupAPITest(t)

	w := doJSON(t, router, "GET", "/api/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid token", errorOf(t, w))
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router, _ := setupAPITest(t)

	w := doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"email":     "new@example.com",
		"password":  "password123",
		"userType":  "buyer",
		"firstName": "New",
		"lastName":  "Buyer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email    string `json:"email"`
			UserType string `json:"user_type"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "User created successfully", created.Message)
	assert.Equal(t, "buyer", created.User.UserType)
	assert.NotEmpty(t, created.Token)

	// Duplicate registration fails, same email.
	w = doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"email":     "new@example.com",
		"password":  "different",
		"userType":  "seller",
		"firstName": "New",
		"lastName":  "Seller",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", errorOf(t, w))

	w = doJSON(t, router, "POST", "/api/auth/login", "", gin.H{
		"email":    "new@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/auth/login", "", gin.H{
		"email":    "new@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", errorOf(t, w))
}

func TestRegisterRejectsUnknownUserType(t *testing.T) {
	router, _ := setupAPITest(t)

	w := doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"email":     "admin@example.com",
		"password":  "password123",
		"userType":  "admin",
		"firstName": "Not",
		"lastName":  "Allowed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorOf(t, w))
}

func TestBuyerRoutesForbiddenForNonSellers(t *testing.T) {
	router, _ := setupAPITest(t)
	buyerID, buyerToken := registerUser(t, router, "buyer@example.com", "buyer")

	w := doJSON(t, router, "GET", "/api/buyers", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only sellers can view buyer profiles", errorOf(t, w))

	w = doJSON(t, router, "POST", "/api/matches/"+buyerID, buyerToken, gin.H{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only sellers can accept/reject buyers", errorOf(t, w))
}

func TestDecideRejectsInvalidAction(t *testing.T) {
	router, _ := setupAPITest(t)
	buyerID, _ := registerUser(t, router, "buyer@example.com", "buyer")
	_, sellerToken := registerUser(t, router, "seller@example.com", "seller")

	w := doJSON(t, router, "POST", "/api/matches/"+buyerID, sellerToken, gin.H{"action": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid action", errorOf(t, w))

	// No match row was created as a side effect.
	w = doJSON(t, router, "GET", "/api/matches", sellerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestEmptyListingsReturnArrays(t *testing.T) {
	router, _ := setupAPITest(t)
	_, buyerToken := registerUser(t, router, "buyer@example.com", "buyer")
	_, sellerToken := registerUser(t, router, "seller@example.com", "seller")

	w := doJSON(t, router, "GET", "/api/buyers", sellerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, router, "GET", "/api/matches", sellerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, router, "GET", "/api/matches", buyerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSaveAndGetProfile(t *testing.T) {
	router, _ := setupAPITest(t)
	_, token := registerUser(t, router, "buyer@example.com", "buyer")

	w := doJSON(t, router, "POST", "/api/profile", token, gin.H{
		"investmentRange":     "1m-5m",
		"experienceLevel":     "intermediate",
		"preferredIndustries": []string{"technology"},
		"timeline":            "6-12 months",
		"riskTolerance":       "moderate",
		"bio":                 "Buyer bio",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var saved struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&saved))
	assert.Equal(t, "Profile saved successfully", saved.Message)

	w = doJSON(t, router, "GET", "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Email               string   `json:"email"`
		InvestmentRange     string   `json:"investment_range"`
		PreferredIndustries []string `json:"preferred_industries"`
		BusinessSize        string   `json:"business_size"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, "buyer@example.com", view.Email)
	assert.Equal(t, "1m-5m", view.InvestmentRange)
	assert.Equal(t, []string{"technology"}, view.PreferredIndustries)
	assert.Empty(t, view.BusinessSize)
}

// Full matchmaking walkthrough: a buyer registers and submits a profile, a
// seller discovers them, accepts, changes their mind, and the buyer sees the
// final decision.
func TestMatchmakingScenario(t *testing.T) {
	router, _ := setupAPITest(t)

	buyerID, buyerToken := registerUser(t, router, "a@x.com", "buyer")
	_, sellerToken := registerUser(t, router, "b@x.com", "seller")

	w := doJSON(t, router, "POST", "/api/profile", buyerToken, gin.H{
		"investmentRange":     "500k-1m",
		"preferredIndustries": []string{"retail"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Seller sees the buyer with a pending status.
	w = doJSON(t, router, "GET", "/api/buyers", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var buyers []struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&buyers))
	require.Len(t, buyers, 1)
	assert.Equal(t, "a@x.com", buyers[0].Email)
	assert.Equal(t, "pending", buyers[0].Status)

	w = doJSON(t, router, "POST", fmt.Sprintf("/api/matches/%s", buyerID), sellerToken, gin.H{"action": "accept"})
	require.Equal(t, http.StatusOK, w.Code)
	var decided struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&decided))
	assert.Equal(t, "Buyer accepted successfully", decided.Message)

	// Re-deciding updates the same match rather than creating a second one.
	w = doJSON(t, router, "POST", fmt.Sprintf("/api/matches/%s", buyerID), sellerToken, gin.H{"action": "reject"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/matches", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sellerMatches []struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sellerMatches))
	require.Len(t, sellerMatches, 1)
	assert.Equal(t, "reject", sellerMatches[0].Status)
	assert.Equal(t, "a@x.com", sellerMatches[0].Email)

	// The buyer sees one entry naming the seller.
	w = doJSON(t, router, "GET", "/api/matches", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var buyerMatches []struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&buyerMatches))
	require.Len(t, buyerMatches, 1)
	assert.Equal(t, "b@x.com", buyerMatches[0].Email)
}
