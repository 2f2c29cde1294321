package routes

import "bytes"
import "net/url"
import "testing"
import "net/http/httptest"

import "github.com/dadleyy/relay.api/relay/net"

func Test_SystemInfo(suite *testing.T) {
	request := httptest.NewRequest("GET", "/system/info", bytes.NewBuffer([]byte{}))
	runtime := net.NewRequestRuntime(url.Values{}, testLogger(), request, nil)

	result := SystemInfo(runtime)

	if len(result.Errors) != 0 {
		suite.Fatalf("expected no errors but received %v", result.Errors)
	}

	if _, ok := result.Metadata["time"]; ok != true {
		suite.Fatalf("expected time metadata but received %v", result.Metadata)
	}
}
