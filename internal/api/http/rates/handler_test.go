package rates_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"privat-rates/internal"
	"privat-rates/internal/api/http/rates"
	"privat-rates/internal/api/http/rates/mock"
	"privat-rates/internal/models"
)

func newMux(reader rates.ArchiveReader) *http.ServeMux {
	mux := http.NewServeMux()
	rates.New(reader, nil).Register(mux)
	return mux
}

func TestHandler_GetRates_Success(t *testing.T) {
	reader := mock.NewMockArchiveReader(t)
	usdSale := decimal.RequireFromString("27.5")
	reader.EXPECT().
		GetDailyRates(testifymock.Anything, testifymock.MatchedBy(func(d internal.Date) bool {
			return d.String() == "01.01.2024"
		})).
		Return(internal.DailyRates{internal.USD: internal.NewRateEntry(&usdSale, nil)}, nil).
		Once()

	rec := httptest.NewRecorder()
	newMux(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates?date=01.01.2024", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"01.01.2024":{"USD":{"sale":27.5,"purchase":null}}}`, rec.Body.String())
}

func TestHandler_GetRates_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		target   string
		setup    func(r *mock.MockArchiveReader)
		wantCode int
		wantBiz  string
	}{
		{
			name:     "wrong method",
			method:   http.MethodPost,
			target:   "/api/v1/rates?date=01.01.2024",
			wantCode: http.StatusMethodNotAllowed,
			wantBiz:  models.CodeMethodNotAllowed,
		},
		{
			name:     "bad date",
			method:   http.MethodGet,
			target:   "/api/v1/rates?date=2024-01-01",
			wantCode: http.StatusBadRequest,
			wantBiz:  models.CodeBadDate,
		},
		{
			name:   "not archived",
			method: http.MethodGet,
			target: "/api/v1/rates?date=02.01.2024",
			setup: func(r *mock.MockArchiveReader) {
				r.EXPECT().GetDailyRates(testifymock.Anything, testifymock.Anything).Return(internal.DailyRates{}, nil).Once()
			},
			wantCode: http.StatusNotFound,
			wantBiz:  models.CodeNotArchived,
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			target: "/api/v1/rates?date=02.01.2024",
			setup: func(r *mock.MockArchiveReader) {
				r.EXPECT().GetDailyRates(testifymock.Anything, testifymock.Anything).Return(nil, errors.New("query archived rates: timeout")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBiz:  models.CodeInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := mock.NewMockArchiveReader(t)
			if tc.setup != nil {
				tc.setup(reader)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.target, nil).WithContext(context.Background())
			newMux(reader).ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			var body models.BusinessError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantBiz, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
