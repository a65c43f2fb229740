package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foremanhttp "github.com/forgeops/foreman-go/internal/http"
	"github.com/forgeops/foreman-go/pkg/foreman"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/hosts", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", username)
			assert.Equal(t, "secret", password)

			response := map[string]string{"name": "web01.example.com"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "admin", "secret")

		req := &foremanhttp.Request{
			Method: "GET",
			Path:   "/hosts",
		}

		resp, err := client.Do(context.Background(), req, http.StatusOK)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "web01.example.com", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/hosts", request.URL.Path)
			assert.Equal(t, `name == "h1"`, request.URL.Query().Get("search"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		req := &foremanhttp.Request{
			Method: "GET",
			Path:   "/hosts",
			Query:  url.Values{"search": []string{`name == "h1"`}},
		}

		resp, err := client.Do(context.Background(), req, http.StatusOK)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, map[string]interface{}{"domain": map[string]interface{}{"name": "example.com"}}, body)

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		req := &foremanhttp.Request{
			Method: "POST",
			Path:   "/domains",
			Body:   map[string]interface{}{"domain": map[string]interface{}{"name": "example.com"}},
		}

		resp, err := client.Do(context.Background(), req, http.StatusOK, http.StatusCreated)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("unaccepted status returns api error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": {"message": "not found"}}`))
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		resp, err := client.Do(context.Background(), &foremanhttp.Request{Method: "GET", Path: "/hosts/99"}, http.StatusOK)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)

		var apiErr *foreman.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "not found", apiErr.Message)
		assert.Contains(t, apiErr.URL, "/hosts/99")
		assert.True(t, foreman.IsNotFound(err))
	})

	t.Run("delete carries the content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		_, err := client.Delete(context.Background(), "/domains/3")
		require.NoError(t, err)
	})

	t.Run("no basic auth without credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _, ok := request.BasicAuth()
			assert.False(t, ok)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		_, err := client.Do(context.Background(), &foremanhttp.Request{Method: "GET", Path: "/status"}, http.StatusOK)
		require.NoError(t, err)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "provisioner/1.2", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "", foremanhttp.WithUserAgent("provisioner/1.2"))

		_, err := client.Do(context.Background(), &foremanhttp.Request{Method: "GET", Path: "/status"}, http.StatusOK)
		require.NoError(t, err)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := foremanhttp.NewClient(server.URL, "", "",
			foremanhttp.WithLogger(logger),
			foremanhttp.WithDebug(true))

		_, err := client.Do(context.Background(), &foremanhttp.Request{Method: "GET", Path: "/hosts"}, http.StatusOK)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Do(ctx, &foremanhttp.Request{Method: "GET", Path: "/hosts"}, http.StatusOK)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		call           func(*foremanhttp.Client, string) error
		expectedMethod string
		status         int
		wantErr        bool
	}{
		{
			name: "get accepts 200",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Get(context.Background(), path, nil)

				return err
			},
			expectedMethod: "GET",
			status:         http.StatusOK,
		},
		{
			name: "get rejects 201",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Get(context.Background(), path, nil)

				return err
			},
			expectedMethod: "GET",
			status:         http.StatusCreated,
			wantErr:        true,
		},
		{
			name: "post accepts 200",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Post(context.Background(), path, map[string]string{"k": "v"})

				return err
			},
			expectedMethod: "POST",
			status:         http.StatusOK,
		},
		{
			name: "post accepts 201",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Post(context.Background(), path, map[string]string{"k": "v"})

				return err
			},
			expectedMethod: "POST",
			status:         http.StatusCreated,
		},
		{
			name: "post rejects 204",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Post(context.Background(), path, map[string]string{"k": "v"})

				return err
			},
			expectedMethod: "POST",
			status:         http.StatusNoContent,
			wantErr:        true,
		},
		{
			name: "put accepts 200",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Put(context.Background(), path, map[string]string{"k": "v"})

				return err
			},
			expectedMethod: "PUT",
			status:         http.StatusOK,
		},
		{
			name: "put rejects 202",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Put(context.Background(), path, map[string]string{"k": "v"})

				return err
			},
			expectedMethod: "PUT",
			status:         http.StatusAccepted,
			wantErr:        true,
		},
		{
			name: "delete accepts 200",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Delete(context.Background(), path)

				return err
			},
			expectedMethod: "DELETE",
			status:         http.StatusOK,
		},
		{
			name: "delete rejects 204",
			call: func(c *foremanhttp.Client, path string) error {
				_, err := c.Delete(context.Background(), path)

				return err
			},
			expectedMethod: "DELETE",
			status:         http.StatusNoContent,
			wantErr:        true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.expectedMethod, request.Method)
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := foremanhttp.NewClient(server.URL, "", "")

			err := testCase.call(client, "/resource")
			if testCase.wantErr {
				require.Error(t, err)

				var apiErr *foreman.APIError

				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, testCase.status, apiErr.StatusCode)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "message field",
			body:     `{"error": {"message": "Resource host not found by id '99'"}}`,
			expected: "Resource host not found by id '99'",
		},
		{
			name:     "full messages joined",
			body:     `{"error": {"full_messages": ["Name can't be blank", "Mac is invalid"]}}`,
			expected: "Name can't be blank, Mac is invalid",
		},
		{
			name:     "single full message",
			body:     `{"error": {"full_messages": ["Name has already been taken"]}}`,
			expected: "Name has already been taken",
		},
		{
			name:     "neither field renders the error object",
			body:     `{"error": {"id": 5, "kind": "conflict"}}`,
			expected: "id: 5, kind: conflict",
		},
		{
			name:     "no error envelope renders the whole body",
			body:     `{"status": "failed"}`,
			expected: "status: failed",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := foremanhttp.NewClient(server.URL, "", "")

			_, err := client.Get(context.Background(), "/hosts", nil)
			require.Error(t, err)

			var apiErr *foreman.APIError

			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.expected, apiErr.Message)
			assert.NotNil(t, apiErr.Raw)
		})
	}

	t.Run("non-json body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("<html>Bad Gateway</html>\n"))
		}))
		defer server.Close()

		client := foremanhttp.NewClient(server.URL, "", "")

		_, err := client.Get(context.Background(), "/hosts", nil)
		require.Error(t, err)

		var apiErr *foreman.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Equal(t, "<html>Bad Gateway</html>", apiErr.Message)
		assert.Nil(t, apiErr.Raw)
	})
}

// Statuses the underlying client's default retry policy would retry
// must still classify as API errors, not transport errors.
func TestClient_ServerFailureStatuses(t *testing.T) {
	t.Parallel()

	statuses := []int{
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
	}

	for _, status := range statuses {
		status := status
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(status)
				_, _ = writer.Write([]byte(`{"error": {"message": "boom"}}`))
			}))
			defer server.Close()

			client := foremanhttp.NewClient(server.URL, "", "")

			resp, err := client.Get(context.Background(), "/hosts", nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, status, resp.StatusCode)

			var apiErr *foreman.APIError

			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, "boom", apiErr.Message)
		})
	}
}

func TestClient_SkipTLSVerify(t *testing.T) {
	t.Parallel()

	newTLSServer := func(t *testing.T) *httptest.Server {
		t.Helper()

		server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		t.Cleanup(server.Close)

		return server
	}

	t.Run("verification fails by default", func(t *testing.T) {
		t.Parallel()

		server := newTLSServer(t)
		client := foremanhttp.NewClient(server.URL, "", "")

		_, err := client.Get(context.Background(), "/status", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "certificate")
	})

	t.Run("skip allows self-signed certificates", func(t *testing.T) {
		t.Parallel()

		server := newTLSServer(t)
		client := foremanhttp.NewClient(server.URL, "", "", foremanhttp.WithSkipTLSVerify(true))

		resp, err := client.Get(context.Background(), "/status", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
