package env

import (
	"reflect"
	"testing"
)

func TestGetEnvOr(t *testing.T) {
	if got := GetEnvOr("candlekeeper.test.unset", "fallback"); got != "fallback" {
		t.Errorf("GetEnvOr = %q, want %q", got, "fallback")
	}
	t.Setenv("candlekeeper.test.set", "value")
	if got := GetEnvOr("candlekeeper.test.set", "fallback"); got != "value" {
		t.Errorf("GetEnvOr = %q, want %q", got, "value")
	}
}

func TestGetEnvIntOr(t *testing.T) {
	if got := GetEnvIntOr("candlekeeper.test.unset", 42); got != 42 {
		t.Errorf("GetEnvIntOr = %d, want %d", got, 42)
	}
	t.Setenv("candlekeeper.test.int", "1200")
	if got := GetEnvIntOr("candlekeeper.test.int", 42); got != 1200 {
		t.Errorf("GetEnvIntOr = %d, want %d", got, 1200)
	}
	t.Setenv("candlekeeper.test.int", "not a number")
	if got := GetEnvIntOr("candlekeeper.test.int", 42); got != 42 {
		t.Errorf("GetEnvIntOr on malformed value = %d, want %d", got, 42)
	}
}

func TestGetEnvBoolOr(t *testing.T) {
	if got := GetEnvBoolOr("candlekeeper.test.unset", true); got != true {
		t.Errorf("GetEnvBoolOr = %v, want true", got)
	}
	for _, value := range []string{"true", "TRUE", "True"} {
		t.Setenv("candlekeeper.test.bool", value)
		if got := GetEnvBoolOr("candlekeeper.test.bool", false); got != true {
			t.Errorf("GetEnvBoolOr(%q) = %v, want true", value, got)
		}
	}
	t.Setenv("candlekeeper.test.bool", "false")
	if got := GetEnvBoolOr("candlekeeper.test.bool", true); got != false {
		t.Errorf("GetEnvBoolOr(%q) = %v, want false", "false", got)
	}
}

func TestGetEnvListOr(t *testing.T) {
	defaults := []string{"BTC/USDT", "ETH/USDT"}
	got := GetEnvListOr("candlekeeper.test.unset", defaults)
	if !reflect.DeepEqual(got, defaults) {
		t.Errorf("GetEnvListOr = %v, want %v", got, defaults)
	}
	got[0] = "mutated"
	if defaults[0] != "BTC/USDT" {
		t.Error("GetEnvListOr must not share the default backing array")
	}
	t.Setenv("candlekeeper.test.list", " 1h, 4h ,1d ")
	got = GetEnvListOr("candlekeeper.test.list", defaults)
	want := []string{"1h", "4h", "1d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetEnvListOr = %v, want %v", got, want)
	}
}
