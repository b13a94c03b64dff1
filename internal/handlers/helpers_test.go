// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_learn2code/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// withUserID はテスト用の認証ミドルウェアです。
// JWTの検証は行わず、固定のユーザーIDをコンテキストに積みます
// (本番のJWTAuthMiddlewareと同じキーを使う)。
func withUserID(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// doRequest はルーターに対してリクエストを1回実行し、レコーダーを返します。
// body が string ならそのまま、それ以外はJSONにエンコードして送ります。
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			encoded, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewReader(encoded)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeErrorCode はエラーレスポンスからエラーコードを取り出します。
func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()

	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "Failed to decode error response: %s", string(body))
	return resp.Error.Code
}
