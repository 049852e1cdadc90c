package pharmaapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/config"
	"github.com/pharmafinder-client/internal/domain"
)

const pharmaciesBody = `[
	{"id":1,"chain":"Benu","name":"AIA APTEEK","address":"Narva mnt 7","city":"Tallinn","county":"Harjumaa",
	 "postalCode":10017,"phoneNumber":"+3726109490","lat":59.437264,"lng":24.760051},
	{"id":2,"chain":"Apotheka","name":"Kesklinna","address":"Viru 1","city":"Tallinn","county":"Harjumaa",
	 "postalCode":10140,"phoneNumber":"+3726000000","email":"info@apotheka.ee","lat":59.436,"lng":24.75}
]`

func TestPharmacyClient_GetPharmacies(t *testing.T) {
	t.Run("bounded request", func(t *testing.T) {
		var gotPath, gotQuery string
		client := NewPharmacyClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, pharmaciesBody)
		}))

		bounds := &domain.Bounds{SW: domain.NewGeoPoint(57.74, 21.74), NE: domain.NewGeoPoint(59.69, 28.3)}
		result, err := client.GetPharmacies(context.Background(), bounds)
		require.NoError(t, err)

		assert.Equal(t, "/api/v1/pharmacies", gotPath)
		assert.Equal(t, "sw=57.74,21.74&ne=59.69,28.3", gotQuery)
		require.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, "AIA APTEEK", result[0].Name)
		assert.Equal(t, 10017, result[0].PostalCode)
		assert.Nil(t, result[0].Email)
		require.NotNil(t, result[1].Email)
		assert.Equal(t, "info@apotheka.ee", *result[1].Email)
		assert.Equal(t, domain.NewGeoPoint(59.436, 24.75), result[1].Location())
	})

	t.Run("unbounded request omits query", func(t *testing.T) {
		var gotQuery string
		client := NewPharmacyClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, `[]`)
		}))

		result, err := client.GetPharmacies(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, gotQuery)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("api error response", func(t *testing.T) {
		client := NewPharmacyClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"code":400,"ts":1700000000000,"msg":"Malformed sw"}`)
		}))

		result, err := client.GetPharmacies(context.Background(), nil)
		require.Error(t, err)
		assert.Nil(t, result)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindApplication, apiErr.Kind)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.NotNil(t, apiErr.Envelope.Code)
		assert.Equal(t, 400, *apiErr.Envelope.Code)
		assert.Equal(t, int64(1700000000000), *apiErr.Envelope.TS)
		assert.Equal(t, "Malformed sw", *apiErr.Envelope.Msg)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("error body is not an envelope", func(t *testing.T) {
		client := NewPharmacyClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))

		_, err := client.GetPharmacies(context.Background(), nil)
		assert.Equal(t, KindApplication, KindOf(err))
		assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	})

	t.Run("malformed success body", func(t *testing.T) {
		client := NewPharmacyClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"not":"an array"`)
		}))

		_, err := client.GetPharmacies(context.Background(), nil)
		assert.Equal(t, KindDecode, KindOf(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		client := NewPharmacyClient(NewClient(&config.APIConfig{BaseURL: "http://127.0.0.1:1"}, zap.NewNop()))

		result, err := client.GetPharmacies(context.Background(), nil)
		assert.Nil(t, result)
		assert.Equal(t, KindTransport, KindOf(err))
		assert.Equal(t, 0, StatusOf(err))
	})
}
