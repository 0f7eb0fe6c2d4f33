package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/bizops-dashboard/internal/auth"
	"github.com/nurpe/bizops-dashboard/internal/config"
	"github.com/nurpe/bizops-dashboard/internal/excel"
	"github.com/nurpe/bizops-dashboard/internal/http/middleware"
	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/pdf"
	"github.com/nurpe/bizops-dashboard/internal/repository/filestore"
	"github.com/nurpe/bizops-dashboard/internal/service"
)

const testSecret = "handler-test-secret"

type testServer struct {
	router *gin.Engine
	users  *service.UserService
	tokens *auth.Issuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := filestore.NewStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	tokens := auth.NewIssuer(testSecret, time.Hour)
	clients := service.NewClientService(store.Clients)
	prospects := service.NewProspectService(store.Prospects)
	prices := service.NewPriceReferenceService(store.PriceReferences)
	users := service.NewUserService(store.Users)
	handler := NewHandler(Services{
		Auth:            service.NewAuthService(store.Users, tokens),
		Clients:         clients,
		Prospects:       prospects,
		TransportRates:  service.NewTransportRateService(store.TransportRates),
		PriceReferences: prices,
		Users:           users,
		Exports:         service.NewExportService(clients, prospects, prices, excel.NewGenerator(), pdf.NewGenerator()),
	}, zerolog.Nop())

	cfg := &config.Config{Environment: config.EnvDevelopment, CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	router := NewRouter(handler, middleware.Auth(auth.NewParser(testSecret)), cfg, zerolog.Nop())
	return &testServer{router: router, users: users, tokens: tokens}
}

func (s *testServer) token(t *testing.T, role model.Role) string {
	t.Helper()
	token, _, err := s.tokens.Issue(model.User{Base: model.Base{ID: uuid.New()}, Email: "caller@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func priceBody(structure model.StructureSociety) gin.H {
	return gin.H{
		"name":             "Gasoil Est",
		"structureSociety": structure,
		"cardinalZone":     "east",
		"rate":             2500,
		"logistics":        gin.H{"warehouseFee": 1000},
		"commercial":       gin.H{"serviceFee": 500, "marginPercent": 10},
		"fiscality":        gin.H{"vat": 1600, "customsDuty": 200, "consumptionDuty": 300, "importVat": 400},
		"parafiscality": gin.H{
			"securityStockFund":   10,
			"strategicStockFund":  20,
			"markingFee":          30,
			"roadMaintenanceFund": 40,
			"inspectionFee":       50,
		},
	}
}

func TestHealthzIsPublic(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/clients", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other, _, err := auth.NewIssuer("another-secret", time.Hour).Issue(model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleAdmin})
	require.NoError(t, err)
	rec = srv.do(t, http.MethodGet, "/clients", other, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, model.RoleCommercial)

	rec := srv.do(t, http.MethodPost, "/clients", token, gin.H{"name": "", "email": "bad"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Contains(t, body.Details, "name")
	assert.Contains(t, body.Details, "email")

	rec = srv.do(t, http.MethodPost, "/clients", token, gin.H{"name": "Alpha", "company": "Alpha SARL"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Client](t, rec)
	assert.NotEqual(t, uuid.Nil, created.ID)

	rec = srv.do(t, http.MethodPost, "/clients", token, gin.H{"name": "Beta"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/clients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]model.Client](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Beta", list[0].Name)

	rec = srv.do(t, http.MethodGet, "/clients?search=sarl", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Client](t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/clients?status=archived", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPut, "/clients/"+created.ID.String(), token, gin.H{"name": "Alpha Updated", "status": "INACTIVE"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ClientStatusInactive, decode[model.Client](t, rec).Status)

	otherToken := srv.token(t, model.RoleCommercial)
	rec = srv.do(t, http.MethodDelete, "/clients/"+created.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/clients/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/clients/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/clients/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/clients/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "clients-")
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/prospects", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+srv.token(t, model.RoleAdmin))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProspectEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, model.RoleCommercial)

	rec := srv.do(t, http.MethodPost, "/prospects", token, gin.H{"name": "Lead", "stage": "CONTACTED"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Prospect](t, rec)

	rec = srv.do(t, http.MethodGet, "/prospects?stage=contacted", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Prospect](t, rec), 1)

	rec = srv.do(t, http.MethodPut, "/prospects/"+created.ID.String(), token, gin.H{"name": "Lead", "stage": "WON"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ProspectStageWon, decode[model.Prospect](t, rec).Stage)

	rec = srv.do(t, http.MethodDelete, "/prospects/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransportRateUpsertStatus(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, model.RoleAdmin)

	rec := srv.do(t, http.MethodPost, "/transport-rates", token, gin.H{"destination": "Kindu", "rateUsdPerCbm": 165})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/transport-rates", token, gin.H{"destination": "Kindu", "rateUsdPerCbm": 170})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 170.0, decode[model.TransportRate](t, rec).RateUSDPerCBM)

	rec = srv.do(t, http.MethodPost, "/transport-rates", token, gin.H{"destination": "Kindu", "rateUsdPerCbm": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/transport-rates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.TransportRate](t, rec), 1)
}

func TestPriceReferenceEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t, model.RoleCommercial)

	rec := srv.do(t, http.MethodPost, "/price-references/preview", token, priceBody(model.StructureSocietyOther))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4125.0, decode[model.PriceReference](t, rec).CommercialPriceCDF)

	rec = srv.do(t, http.MethodPost, "/price-references", token, priceBody(model.StructureSocietyOther))
	require.Equal(t, http.StatusCreated, rec.Code)
	other := decode[model.PriceReference](t, rec)
	assert.Equal(t, model.CardinalZoneEast, other.CardinalZone)
	assert.Equal(t, 1.65, other.CommercialPriceUSD)

	rec = srv.do(t, http.MethodPost, "/price-references", token, priceBody(model.StructureSocietyMineOwned))
	require.Equal(t, http.StatusCreated, rec.Code)
	mine := decode[model.PriceReference](t, rec)

	rec = srv.do(t, http.MethodGet, "/non-mining-prices", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]model.PriceReference](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, other.ID, list[0].ID)

	rec = srv.do(t, http.MethodGet, "/non-mining-prices/"+mine.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/non-mining-prices/"+other.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/price-references?structureSociety=mine_owned", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.PriceReference](t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/price-references/"+other.ID.String()+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ContentTypePDF, rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	body := priceBody(model.StructureSocietyOther)
	delete(body, "fiscality")
	rec = srv.do(t, http.MethodPut, "/price-references/"+other.ID.String(), token, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorBody](t, rec).Details, "fiscality")

	rec = srv.do(t, http.MethodDelete, "/price-references/"+mine.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserEndpoints(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.token(t, model.RoleAdmin)
	commercialToken := srv.token(t, model.RoleCommercial)

	rec := srv.do(t, http.MethodGet, "/users", commercialToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	payload := gin.H{"name": "Sales", "email": "sales@example.com", "password": "password1"}
	rec = srv.do(t, http.MethodPost, "/users", adminToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = srv.do(t, http.MethodPost, "/users", adminToken, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/user-role?email=sales@example.com", commercialToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "COMMERCIAL", decode[map[string]string](t, rec)["role"])

	rec = srv.do(t, http.MethodGet, "/user-role?email=ghost@example.com", commercialToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/user-role", commercialToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginAndMenu(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.users.EnsureAdmin(context.Background(), "Root", "root@example.com", "changeme123")
	require.NoError(t, err)

	rec := srv.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "root@example.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "root@example.com", "password": "changeme123"})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[service.LoginResult](t, rec)
	require.NotEmpty(t, login.Token)

	rec = srv.do(t, http.MethodGet, "/menu", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	menu := decode[struct {
		Role  model.Role       `json:"role"`
		Items []model.MenuItem `json:"items"`
	}](t, rec)
	assert.Equal(t, model.RoleAdmin, menu.Role)
	assert.Len(t, menu.Items, len(service.MenuFor(model.RoleAdmin)))
}
