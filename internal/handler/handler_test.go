package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"github.com/mtlprog/agenthub/internal/directory"
	"github.com/mtlprog/agenthub/internal/handler"
	"github.com/mtlprog/agenthub/internal/handler/dto"
	"github.com/mtlprog/agenthub/internal/render"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type HandlerTestSuite struct {
	suite.Suite
	dir     *directory.Directory
	handler *handler.Handler
	routes  http.Handler
}

func (s *HandlerTestSuite) SetupSuite() {
	s.dir = directory.Default()

	renderer, err := render.New()
	s.Require().NoError(err)

	s.handler, err = handler.New(s.dir, renderer)
	s.Require().NoError(err)

	s.routes = s.handler.Routes("*")
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// Helper to make a request through the full handler chain
func (s *HandlerTestSuite) makeRequest(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.routes.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestHealthz() {
	w := s.makeRequest("GET", "/healthz", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.makeRequest("GET", "/api/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/json", w.Header().Get("Content-Type"))

	var resp dto.HealthResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("healthy", resp.Status)
	s.Equal("HPC Agent Hub", resp.Service)
	s.Equal("1.0.0", resp.Version)
}

func (s *HandlerTestSuite) TestListAgents_DirectoryOrder() {
	w := s.makeRequest("GET", "/api/agents", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp []dto.AgentResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Require().Len(resp, s.dir.Len())

	for i, a := range s.dir.All() {
		s.Equal(a.ID, resp[i].ID)
		s.Equal(a.DestinationURL, resp[i].Link)
		s.Equal("active", resp[i].Status)
		s.Require().NotNil(resp[i].Badge)
		s.Equal(a.BadgeLabel, *resp[i].Badge)
	}

	// fairwater-bot has no short link
	s.NotNil(resp[0].ShortLink)
	s.Nil(resp[2].ShortLink)
}

func (s *HandlerTestSuite) TestGetAgent() {
	w := s.makeRequest("GET", "/api/agents/hpc-ai-insights", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp dto.AgentResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("HPC AI Insights", resp.Name)
	s.Equal("https://aka.ms/hpc-ai-insights", resp.Link)
	s.Equal("bar-chart", resp.Icon)
}

func (s *HandlerTestSuite) TestGetAgent_NotFound() {
	w := s.makeRequest("GET", "/api/agents/nope", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var errResp dto.ErrorResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&errResp))
	s.Equal("AGENT_NOT_FOUND", errResp.Error.Code)
}

func (s *HandlerTestSuite) TestUnknownAPIPath() {
	w := s.makeRequest("GET", "/api/unknown", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var errResp dto.ErrorResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&errResp))
	s.Equal("NOT_FOUND", errResp.Error.Code)
}

func (s *HandlerTestSuite) TestLandingPage() {
	w := s.makeRequest("GET", "/", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/html; charset=utf-8", w.Header().Get("Content-Type"))
	s.NotEmpty(w.Header().Get("ETag"))

	doc, err := html.Parse(w.Body)
	s.Require().NoError(err)

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" {
					hrefs = append(hrefs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	s.Equal([]string{
		"https://aka.ms/hpc-pulse",
		"https://aka.ms/hpc-ai-insights",
		"https://teams.microsoft.com/l/app/?source=embedded-builder&titleId=T_726f5869-fadb-132f-a9d4-44fe83d8ffa0",
	}, hrefs)
}

func (s *HandlerTestSuite) TestLandingPage_Fallback() {
	root := s.makeRequest("GET", "/", nil)
	other := s.makeRequest("GET", "/some/client/route", nil)

	s.Equal(http.StatusOK, other.Code)
	s.Equal(root.Body.Bytes(), other.Body.Bytes())
}

func (s *HandlerTestSuite) TestLandingPage_NotModified() {
	first := s.makeRequest("GET", "/", nil)
	etag := first.Header().Get("ETag")

	w := s.makeRequest("GET", "/", map[string]string{"If-None-Match": etag})
	s.Equal(http.StatusNotModified, w.Code)
	s.Empty(w.Body.Bytes())
}

func (s *HandlerTestSuite) TestLandingPage_Stable() {
	a := s.makeRequest("GET", "/", nil)
	b := s.makeRequest("GET", "/", nil)
	s.True(bytes.Equal(a.Body.Bytes(), b.Body.Bytes()))
}

func (s *HandlerTestSuite) TestCORSHeaders() {
	w := s.makeRequest("GET", "/api/agents", nil)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.NotEmpty(w.Header().Get("X-Request-ID"))

	w = s.makeRequest("OPTIONS", "/api/agents", map[string]string{
		"Origin":                        "https://portal.example.com",
		"Access-Control-Request-Method": "GET",
	})
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestMethodNotAllowed() {
	w := s.makeRequest("POST", "/api/agents", nil)
	s.Equal(http.StatusMethodNotAllowed, w.Code)
}

func (s *HandlerTestSuite) TestOverRealServer() {
	srv := httptest.NewServer(s.routes)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/agents")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "fairwater-bot")
}
