package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kailas-cloud/bnggrid"
	transport "github.com/kailas-cloud/bnggrid/internal/transport/chi"
	convertuc "github.com/kailas-cloud/bnggrid/internal/usecase/convert"
)

func newTestService(t *testing.T, apiKeys []string) *httptest.Server {
	t.Helper()
	r := chirouter.NewRouter()
	r.Use(transport.BearerAuthMiddleware(apiKeys))
	transport.NewServer(convertuc.New(), zap.NewNop()).Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Convert(t *testing.T) {
	srv := newTestService(t, nil)
	client := New(WithBaseURL(srv.URL))

	p, err := client.Convert(context.Background(), -0.32824866, 51.44533267)
	require.NoError(t, err)
	require.Equal(t, bnggrid.GridPoint{Easting: 516276, Northing: 173141}, p)
}

func TestClient_ConvertBatch(t *testing.T) {
	srv := newTestService(t, nil)
	client := New(WithBaseURL(srv.URL))

	points, err := client.ConvertBatch(context.Background(),
		[]float64{-0.32824866, -3.188267},
		[]float64{51.44533267, 55.953252},
	)
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, bnggrid.Convert(-0.32824866, 51.44533267), points[0])
}

func TestClient_ConvertBatch_LengthMismatch(t *testing.T) {
	srv := newTestService(t, nil)
	client := New(WithBaseURL(srv.URL))

	_, err := client.ConvertBatch(context.Background(), []float64{1, 2}, []float64{50})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_Inverse(t *testing.T) {
	srv := newTestService(t, nil)
	client := New(WithBaseURL(srv.URL))

	lon, lat, err := client.Inverse(context.Background(), 516276, 173141)
	require.NoError(t, err)
	require.InDelta(t, -0.32824866, lon, 1e-4)
	require.InDelta(t, 51.44533267, lat, 1e-4)
}

func TestClient_AuthHeader(t *testing.T) {
	srv := newTestService(t, []string{"sekrit"})

	unauthed := New(WithBaseURL(srv.URL))
	_, err := unauthed.Convert(context.Background(), 0, 51)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	authed := New(WithBaseURL(srv.URL), WithAPIKey("sekrit"))
	_, err = authed.Convert(context.Background(), 0, 51)
	require.NoError(t, err)
}
