package limiter

import (
	"testing"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		limit   string
		want    float64
		wantErr bool
	}{
		{"5-S", 5, false},
		{"60-M", 1, false},
		{"3600-H", 1, false},
		{"86400-D", 1, false},
		{"abc-H", 0, true},
		{"100", 0, true},
		{"100-X", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.limit, func(t *testing.T) {
			rate, err := ParseLimit(tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLimit(%q) err = %v, wantErr %v", tt.limit, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if rate.Rate != tt.want {
				t.Errorf("ParseLimit(%q) = %v 次/秒, 期望 %v", tt.limit, rate.Rate, tt.want)
			}
		})
	}
}

func TestRouteToKeyString(t *testing.T) {
	got := routeToKeyString("/api/users/:user_id/payments")
	want := "-api-users-_user_id-payments"
	if got != want {
		t.Errorf("routeToKeyString = %q, 期望 %q", got, want)
	}
}
