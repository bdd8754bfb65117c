package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	logisticshandler "kisan/internal/logistics/handler"
	logisticsmetrics "kisan/internal/logistics/metrics"
	logisticsservice "kisan/internal/logistics/service"
	logisticsstore "kisan/internal/logistics/store"
	"kisan/internal/platform/health"
	"kisan/internal/platform/i18n"
	"kisan/internal/schemes/adapters"
	"kisan/internal/schemes/catalog"
	schemeshandler "kisan/internal/schemes/handler"
	schemesmetrics "kisan/internal/schemes/metrics"
	schemesservice "kisan/internal/schemes/service"
	"kisan/internal/verification"
	verificationhandler "kisan/internal/verification/handler"
	verificationstore "kisan/internal/verification/store"
	"kisan/pkg/platform/middleware/request"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// RouterSuite drives the fully wired router with the shipped catalogs.
type RouterSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupSuite() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	catalogs, err := catalog.LoadAll(ctx)
	s.Require().NoError(err)
	farmers, err := verificationstore.NewDefault()
	s.Require().NoError(err)
	processors, err := logisticsstore.NewDefault()
	s.Require().NoError(err)

	verifier := verification.New(farmers, verification.WithLogger(logger))
	schemes := schemesservice.New(catalogs,
		schemesservice.WithVerifier(adapters.NewVerificationAdapter(verifier)),
		schemesservice.WithMetrics(schemesmetrics.New(reg)),
		schemesservice.WithLogger(logger),
	)
	logistics := logisticsservice.New(processors,
		logisticsservice.WithMetrics(logisticsmetrics.New(reg)),
		logisticsservice.WithLogger(logger),
	)

	router := NewRouter(Deps{
		Logger:       logger,
		DefaultLang:  i18n.English,
		Timeout:      5 * time.Second,
		MaxBodyBytes: 64 * 1024,
		Gatherer:     reg,
		Latency:      request.NewMetrics(reg),
		Health:       health.New("test"),
		Handlers: []Registrar{
			schemeshandler.New(schemes, logger, i18n.English),
			logisticshandler.New(logistics, logger),
			verificationhandler.New(verifier, logger),
		},
	})
	s.server = httptest.NewServer(router)
}

func (s *RouterSuite) TearDownSuite() {
	s.server.Close()
	http.DefaultClient.CloseIdleConnections()
}

func (s *RouterSuite) post(path, body string) (*http.Response, []byte) {
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader([]byte(body)))
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *RouterSuite) get(path string, header map[string]string) (*http.Response, []byte) {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	s.Require().NoError(err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *RouterSuite) TestSmallClusterFarmerEndToEnd() {
	resp, body := s.post("/schemes/eligibility",
		`{"farmer_type":"small","land_size":2,"is_registered":true,"is_in_cluster":true,"is_fpo_member":true}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
	s.Equal("en", resp.Header.Get("Content-Language"))

	var got schemeshandler.EligibilityResponse
	s.Require().NoError(json.Unmarshal(body, &got))
	s.Nil(got.Warning)
	s.Equal([]string{"pm_kisan", "kalia", "pmfby", "soil_health_card", "nmeo_oilseeds", "farm_mechanization"}, got.Eligible)
	s.Equal(50, got.CombinationTotal)
	s.Len(got.Combinations, 10)

	for _, r := range got.Results {
		if r.SchemeID == "trfa" {
			s.False(r.Eligible)
			s.Equal("must have rice-fallow land after Kharif harvest", r.Message)
		}
	}
}

func (s *RouterSuite) TestVerifiedMobileMarksRegistered() {
	resp, body := s.post("/schemes/eligibility", `{"farmer_type":"marginal","land_size":3,"mobile":"9437012345"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var got schemeshandler.EligibilityResponse
	s.Require().NoError(json.Unmarshal(body, &got))
	s.True(got.Verified)
	s.True(got.Profile.IsRegistered)
	s.InDelta(1.0, got.Profile.LandSize, 0)
	s.Require().NotNil(got.Warning)
	s.Equal("land_size_above_max", got.Warning.Code)
	s.Contains(got.Eligible, "pm_kisan")
}

func (s *RouterSuite) TestOdiaCatalog() {
	resp, body := s.get("/schemes", map[string]string{"Accept-Language": "or-IN,en;q=0.5"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("or", resp.Header.Get("Content-Language"))

	var got schemeshandler.CatalogResponse
	s.Require().NoError(json.Unmarshal(body, &got))
	s.Equal("or", got.Lang)
	s.Len(got.Schemes, 9)
}

func (s *RouterSuite) TestLogisticsEndToEnd() {
	resp, body := s.post("/logistics/rankings", `{"crop":"groundnut","quantity":100}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var ranked logisticshandler.RankingResponse
	s.Require().NoError(json.Unmarshal(body, &ranked))
	s.Require().NotEmpty(ranked.Projections)
	for i := 1; i < len(ranked.Projections); i++ {
		s.GreaterOrEqual(ranked.Projections[i-1].Profit, ranked.Projections[i].Profit)
	}
	_, err := time.Parse(time.DateOnly, ranked.Projections[0].DeliverBy)
	s.NoError(err)

	resp, _ = s.post("/logistics/projections", `{"processor_id":"nowhere","crop":"groundnut","quantity":10}`)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *RouterSuite) TestVerificationEndToEnd() {
	resp, body := s.post("/verification/mobile", `{"mobile":"+91 94370 12345"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	s.Contains(string(body), `"verified":true`)
}

func (s *RouterSuite) TestRegisterPairAndPendingEligibility() {
	resp, body := s.post("/verification/farmers", `{"mobile":"7008999111","name":"Kuni Majhi","land_acres":1.5,"crop":"paddy"}`)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var farmer verificationhandler.FarmerResponse
	s.Require().NoError(json.Unmarshal(body, &farmer))
	s.False(farmer.Verified)

	resp, body = s.post("/verification/pair", `{"mobile":"7008999111","farmer_did":"`+farmer.FarmerDID+`"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	s.Contains(string(body), `"match":true`)

	resp, _ = s.post("/verification/farmers", `{"mobile":"7008999111","name":"Kuni Majhi"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, body = s.post("/schemes/eligibility", `{"farmer_type":"small","land_size":1.5,"mobile":"7008999111"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var got schemeshandler.EligibilityResponse
	s.Require().NoError(json.Unmarshal(body, &got))
	s.False(got.Verified, "pending registrations do not count as verified")
}

func (s *RouterSuite) TestHealthAndMetrics() {
	resp, _ := s.get("/health/live", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	// Generate at least one observation before scraping.
	s.post("/schemes/combinations", `{"schemes":["pm_kisan","kalia"]}`)
	resp, body := s.get("/metrics", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "kisan_endpoint_latency_seconds")
}

func (s *RouterSuite) TestContentTypeAndLanguageGuards() {
	resp, err := http.Post(s.server.URL+"/schemes/combinations", "text/plain", bytes.NewReader([]byte("x")))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnsupportedMediaType, resp.StatusCode)

	resp, _ = s.get("/schemes?lang=fr", nil)
	s.Equal(http.StatusNotAcceptable, resp.StatusCode)
}
