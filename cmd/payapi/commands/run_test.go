package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
)

// These tests drive whole commands against an httptest server. They share
// global viper state and must not run in parallel.

func newAPIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set("api", server.URL)
	viper.Set("api_key", "sk_test_123")
	viper.Set("output", constants.FormatJSON)
	t.Cleanup(viper.Reset)

	return server
}

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func readForm(t *testing.T, r *http.Request) string {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	return string(body)
}

func TestCustomersCommands(t *testing.T) {
	t.Run("get one", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/customers/cus_1", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{"id":"cus_1","object":"customer","email":"jenny@example.com","created":1700000000}`)
		})

		out, err := runCommand(t, NewCustomersCommand(), "", "get", "cus_1")
		require.NoError(t, err)

		var customer map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &customer))
		assert.Equal(t, "cus_1", customer["id"])
		assert.Equal(t, "jenny@example.com", customer["email"])
	})

	t.Run("get several including a deleted one", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/customers/cus_1":
				writeJSON(w, http.StatusOK, `{"id":"cus_1","object":"customer","created":1700000000}`)
			case "/customers/cus_2":
				writeJSON(w, http.StatusOK, `{"id":"cus_2","object":"customer","deleted":true}`)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		out, err := runCommand(t, NewCustomersCommand(), "", "get", "cus_1", "cus_2")
		require.NoError(t, err)

		var customers []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &customers))
		require.Len(t, customers, 2)
		assert.Equal(t, "cus_1", customers[0]["id"])
		assert.Equal(t, "cus_2", customers[1]["id"])
		assert.Equal(t, true, customers[1]["deleted"])
	})

	t.Run("get missing customer", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"error":{"type":"invalid_request_error","message":"No such customer: 'cus_x'","param":"id"}}`)
		})

		_, err := runCommand(t, NewCustomersCommand(), "", "get", "cus_x")
		require.Error(t, err)
		assert.True(t, payapi.IsNotFound(err))
		assert.Contains(t, err.Error(), "cus_x")
	})

	t.Run("update sends only changed fields", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/customers/cus_1", r.URL.Path)
			assert.Equal(t, "email=new%40example.com&metadata[order]=42&metadata[stale]=", readForm(t, r))
			writeJSON(w, http.StatusOK, `{"id":"cus_1","object":"customer","email":"new@example.com"}`)
		})

		_, err := runCommand(t, NewCustomersCommand(), "",
			"update", "cus_1", "--email", "new@example.com", "--metadata", "order=42", "--metadata", "stale=")
		require.NoError(t, err)
	})

	t.Run("create with negative balance", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers", r.URL.Path)
			assert.Equal(t, "balance=-500&name=Jenny&test_clock=clock_1", readForm(t, r))
			writeJSON(w, http.StatusOK, `{"id":"cus_9","object":"customer","balance":-500}`)
		})

		_, err := runCommand(t, NewCustomersCommand(), "",
			"create", "--name", "Jenny", "--balance", "-500", "--test-clock", "clock_1")
		require.NoError(t, err)
	})

	t.Run("create rejects unknown tax status", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewCustomersCommand(), "", "create", "--tax-exempt", "sometimes")
		require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
	})

	t.Run("delete asks first", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		out, err := runCommand(t, NewCustomersCommand(), "n\n", "delete", "cus_1")
		require.NoError(t, err)
		assert.Contains(t, out, "Cancelled")
	})
}

func TestInvoicesCommands(t *testing.T) {
	t.Run("list with filters", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/invoices", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "cus_1", query.Get("customer"))
			assert.Equal(t, "paid", query.Get("status"))
			assert.Equal(t, "100", query.Get("created[gte]"))
			assert.Equal(t, "5", query.Get("limit"))
			writeJSON(w, http.StatusOK, `{"object":"list","url":"/invoices","has_more":true,"data":[{"id":"in_1","object":"invoice","currency":"usd","total":1050}]}`)
		})

		out, err := runCommand(t, NewInvoicesCommand(), "",
			"list", "--customer", "cus_1", "--status", "paid", "--created-after", "100", "--limit", "5")
		require.NoError(t, err)

		var invoices []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &invoices))
		require.Len(t, invoices, 1)
		assert.Equal(t, "in_1", invoices[0]["id"])
	})

	t.Run("list all follows the cursor", func(t *testing.T) {
		var calls atomic.Int32

		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)

			switch r.URL.Query().Get("starting_after") {
			case "":
				writeJSON(w, http.StatusOK, `{"object":"list","has_more":true,"data":[{"id":"in_1","object":"invoice"}]}`)
			case "in_1":
				writeJSON(w, http.StatusOK, `{"object":"list","has_more":false,"data":[{"id":"in_2","object":"invoice"}]}`)
			default:
				t.Errorf("unexpected cursor %q", r.URL.Query().Get("starting_after"))
			}
		})

		out, err := runCommand(t, NewInvoicesCommand(), "", "list", "--all")
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Contains(t, out, "in_1")
		assert.Contains(t, out, "in_2")
	})

	t.Run("unknown status never reaches the server", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewInvoicesCommand(), "", "list", "--status", "settled")
		require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
	})

	t.Run("limit out of range", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewInvoicesCommand(), "", "list", "--limit", "500")
		require.ErrorIs(t, err, ErrInvalidFlag)
	})

	t.Run("get several reports every failure", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/invoices/in_1" {
				writeJSON(w, http.StatusOK, `{"id":"in_1","object":"invoice"}`)

				return
			}

			writeJSON(w, http.StatusNotFound, `{"error":{"type":"invalid_request_error","message":"No such invoice"}}`)
		})

		_, err := runCommand(t, NewInvoicesCommand(), "", "get", "in_1", "in_2", "in_3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "in_2")
		assert.Contains(t, err.Error(), "in_3")
		assert.NotContains(t, err.Error(), "in_1")
	})

	t.Run("pay out of band", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/invoices/in_1/pay", r.URL.Path)
			assert.Equal(t, "paid_out_of_band=true", readForm(t, r))
			assert.NotEmpty(t, r.Header.Get(constants.HeaderIdempotencyKey))
			writeJSON(w, http.StatusOK, `{"id":"in_1","object":"invoice","status":"paid"}`)
		})

		out, err := runCommand(t, NewInvoicesCommand(), "", "pay", "in_1", "--paid-out-of-band")
		require.NoError(t, err)
		assert.Contains(t, out, `"status": "paid"`)
	})

	t.Run("void sends an empty body", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/invoices/in_1/void", r.URL.Path)
			assert.Empty(t, readForm(t, r))
			writeJSON(w, http.StatusOK, `{"id":"in_1","object":"invoice","status":"void"}`)
		})

		_, err := runCommand(t, NewInvoicesCommand(), "", "void", "in_1")
		require.NoError(t, err)
	})

	t.Run("upcoming needs a target", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewInvoicesCommand(), "", "upcoming")
		require.ErrorIs(t, err, ErrMissingFlag)
	})
}

func TestTestClocksCommands(t *testing.T) {
	t.Run("advance by duration", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				assert.Equal(t, "/test_helpers/test_clocks/clock_1", r.URL.Path)
				writeJSON(w, http.StatusOK, `{"id":"clock_1","object":"test_helpers.test_clock","frozen_time":1700000000,"status":"ready"}`)
			case http.MethodPost:
				assert.Equal(t, "/test_helpers/test_clocks/clock_1/advance", r.URL.Path)
				assert.Equal(t, "frozen_time=1700003600", readForm(t, r))
				writeJSON(w, http.StatusOK, `{"id":"clock_1","object":"test_helpers.test_clock","frozen_time":1700003600,"status":"advancing"}`)
			}
		})

		out, err := runCommand(t, NewTestClocksCommand(), "", "advance", "clock_1", "--by", "1h")
		require.NoError(t, err)
		assert.Contains(t, out, `"status": "advancing"`)
	})

	t.Run("advance needs exactly one target", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewTestClocksCommand(), "", "advance", "clock_1")
		require.ErrorIs(t, err, ErrMissingFlag)
	})

	t.Run("create", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/test_helpers/test_clocks", r.URL.Path)
			assert.Equal(t, "frozen_time=1700000000&name=Renewal", readForm(t, r))
			writeJSON(w, http.StatusOK, `{"id":"clock_2","object":"test_helpers.test_clock","frozen_time":1700000000,"status":"ready"}`)
		})

		_, err := runCommand(t, NewTestClocksCommand(), "", "create", "--frozen-time", "1700000000", "--name", "Renewal")
		require.NoError(t, err)
	})

	t.Run("live key refused", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})
		viper.Set("api_key", "sk_live_123")

		_, err := runCommand(t, NewTestClocksCommand(), "", "list")
		require.ErrorIs(t, err, constants.ErrLiveKeyNotAllowed)
	})

	t.Run("delete forced", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			writeJSON(w, http.StatusOK, `{"id":"clock_1","object":"test_helpers.test_clock","deleted":true}`)
		})

		out, err := runCommand(t, NewTestClocksCommand(), "", "delete", "clock_1", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Successfully deleted test clock 'clock_1'")
	})
}

func TestSetupIntentsCommands(t *testing.T) {
	t.Run("verify with amounts", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/setup_intents/seti_1/verify_microdeposits", r.URL.Path)
			assert.Equal(t, "amounts[0]=32&amounts[1]=45", readForm(t, r))
			writeJSON(w, http.StatusOK, `{"id":"seti_1","object":"setup_intent","status":"succeeded","usage":"off_session"}`)
		})

		_, err := runCommand(t, NewSetupIntentsCommand(), "", "verify-microdeposits", "seti_1", "--amounts", "32,45")
		require.NoError(t, err)
	})

	t.Run("create", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/setup_intents", r.URL.Path)

			form := readForm(t, r)
			assert.Contains(t, form, "customer=cus_1")
			assert.Contains(t, form, "payment_method_types[0]=card")
			assert.Contains(t, form, "payment_method_types[1]=sepa_debit")
			assert.Contains(t, form, "usage=off_session")
			writeJSON(w, http.StatusOK, `{"id":"seti_2","object":"setup_intent","status":"requires_payment_method","usage":"off_session"}`)
		})

		_, err := runCommand(t, NewSetupIntentsCommand(), "",
			"create", "--customer", "cus_1", "--payment-method-types", "card,sepa_debit", "--usage", "off_session")
		require.NoError(t, err)
	})

	t.Run("cancel with unknown reason", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := runCommand(t, NewSetupIntentsCommand(), "", "cancel", "seti_1", "--reason", "bored")
		require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
	})
}

func useConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "payapi", "config.yml")
	viper.Set("config", path)
	t.Cleanup(viper.Reset)

	return path
}

func TestConfigCommands(t *testing.T) {
	path := useConfigFile(t)

	_, err := runCommand(t, NewConfigCommand(), "", "set", "api_key", "sk_test_abcdef1234")
	require.NoError(t, err)

	_, err = runCommand(t, NewConfigCommand(), "", "set", "account", "acct_1")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	viper.Set("output", constants.FormatJSON)

	out, err := runCommand(t, NewConfigCommand(), "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"api_key": "sk_test_***1234"`)
	assert.Contains(t, out, `"account": "acct_1"`)
	assert.NotContains(t, out, "abcdef")

	_, err = runCommand(t, NewConfigCommand(), "", "unset", "account")
	require.NoError(t, err)

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, config.Account)
	assert.Equal(t, "sk_test_abcdef1234", config.APIKey)

	_, err = runCommand(t, NewConfigCommand(), "", "set", "colour", "blue")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = runCommand(t, NewConfigCommand(), "", "set", "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutput)

	_, err = runCommand(t, NewConfigCommand(), "", "set", "api_key", "pk_test_123")
	require.ErrorIs(t, err, constants.ErrInvalidKeyFormat)
}

func TestLoginCommand(t *testing.T) {
	t.Run("piped key without verification", func(t *testing.T) {
		useConfigFile(t)

		out, err := runCommand(t, NewLoginCommand(), "sk_test_piped1234\n", "--skip-verify")
		require.NoError(t, err)
		assert.Contains(t, out, "test mode key sk_test_***1234")

		config, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "sk_test_piped1234", config.APIKey)
	})

	t.Run("verifies against the API", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "Bearer sk_test_fresh9876", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{"object":"list","data":[],"has_more":false}`)
		})
		useConfigFile(t)
		viper.Set("api", server.URL)

		_, err := runCommand(t, NewLoginCommand(), "", "--key", "sk_test_fresh9876")
		require.NoError(t, err)

		config, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "sk_test_fresh9876", config.APIKey)
		assert.Equal(t, server.URL, config.API)
	})

	t.Run("rejected key is not stored", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`)
		})
		useConfigFile(t)
		viper.Set("api", server.URL)

		_, err := runCommand(t, NewLoginCommand(), "", "--key", "sk_test_revoked")
		require.Error(t, err)
		assert.True(t, payapi.IsUnauthorized(err))

		config, err := loadConfig()
		require.NoError(t, err)
		assert.Empty(t, config.APIKey)
	})

	t.Run("bad format", func(t *testing.T) {
		useConfigFile(t)

		_, err := runCommand(t, NewLoginCommand(), "", "--key", "pk_test_123", "--skip-verify")
		require.ErrorIs(t, err, constants.ErrInvalidKeyFormat)
	})

	t.Run("logout", func(t *testing.T) {
		useConfigFile(t)
		require.NoError(t, saveConfig(&Config{APIKey: "sk_test_gone", Output: constants.FormatYAML}))

		_, err := runCommand(t, NewLogoutCommand(), "")
		require.NoError(t, err)

		config, err := loadConfig()
		require.NoError(t, err)
		assert.Empty(t, config.APIKey)
		assert.Equal(t, constants.FormatYAML, config.Output)
	})
}
