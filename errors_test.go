package currencyapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnUnauthorized_ShouldReturnAPIErrorWithMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Invalid authentication credentials"}`)
	})

	resp, err := client.Latest(context.Background(), "USD", nil)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid authentication credentials", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Invalid authentication credentials")
}

func Test_OnValidationError_ShouldReturnPerParamMessages(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"The given data was invalid.","errors":{"currencies":["The selected currencies is invalid."]}}`)
	})

	_, err := client.Latest(context.Background(), "USD", []string{"NOPE"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Contains(t, apiErr.Errors, "currencies")
	assert.Equal(t, "The selected currencies is invalid.", apiErr.Errors["currencies"][0])
}

func Test_OnNonJSONError_ShouldKeepRawBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "API rate limit exceeded")
	})

	_, err := client.Status(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "API rate limit exceeded", string(apiErr.Body))
	assert.Contains(t, apiErr.Error(), "status 429")
}

func Test_OnNonStandardSuccessStatus_ShouldDecodeBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, `{"account_id":7,"quotas":{}}`)
	})

	resp, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.AccountID)
}

func Test_OnRedirectStatus_ShouldReturnAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMultipleChoices)
		fmt.Fprint(w, `{"message":"Multiple choices"}`)
	})

	resp, err := client.Status(context.Background())
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusMultipleChoices, apiErr.StatusCode)
}

func Test_OnMalformedRateValue_ShouldReturnParseErrorWithBody(t *testing.T) {
	body := `{"meta":{"last_updated_at":"2023-06-23T10:15:59Z"},"data":{"EUR":{"code":"EUR","value":false}}}`
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	})

	resp, err := client.Latest(context.Background(), "USD", []string{"EUR"})
	assert.Nil(t, resp)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, body, string(parseErr.Body))
	assert.Error(t, parseErr.Unwrap())
}

func Test_OnTransportFailure_ShouldWrapRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewWithClient("test-api-key", server.URL, server.Client())
	require.NoError(t, err)
	server.Close()

	resp, err := client.Latest(context.Background(), "USD", nil)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latest request")
}
