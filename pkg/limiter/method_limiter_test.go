package limiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testContext(uri string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", uri, nil)
	c.Request.RequestURI = uri
	return c
}

func TestMethodLimiterKey(t *testing.T) {
	l := NewMethodLimiter()

	tests := []struct {
		uri  string
		want string
	}{
		{"/api/notes", "/api/notes"},
		{"/api/search?q=milk", "/api/search"},
		{"/api/auth/signin?x=1&y=2", "/api/auth/signin"},
	}

	for _, tt := range tests {
		if got := l.Key(testContext(tt.uri)); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestMethodLimiterBuckets(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(BucketRule{
		Key:          "/api/auth",
		FillInterval: time.Hour,
		Capacity:     2,
		Quantum:      2,
	})

	bucket, ok := l.GetBucket("/api/auth/signin")
	if !ok {
		t.Fatal("bucket not matched by prefix")
	}

	if got := bucket.TakeAvailable(1); got != 1 {
		t.Fatalf("first take = %d, want 1", got)
	}
	if got := bucket.TakeAvailable(1); got != 1 {
		t.Fatalf("second take = %d, want 1", got)
	}
	// Capacity exhausted and the refill interval has not elapsed.
	if got := bucket.TakeAvailable(1); got != 0 {
		t.Errorf("third take = %d, want 0", got)
	}

	if _, ok := l.GetBucket("/metrics"); ok {
		t.Error("unrelated path matched a bucket")
	}
}

func TestMethodLimiterOverlappingPrefixes(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(
		BucketRule{
			Key:          "/api/auth",
			FillInterval: time.Hour,
			Capacity:     2,
			Quantum:      2,
		},
		BucketRule{
			Key:          "/api",
			FillInterval: time.Hour,
			Capacity:     100,
			Quantum:      100,
		},
	)

	// Both keys are prefixes of the auth path; the narrower rule must
	// win on every lookup.
	authBucket, ok := l.GetBucket("/api/auth/signin")
	if !ok {
		t.Fatal("auth path matched no bucket")
	}
	for i := 0; i < 50; i++ {
		b, ok := l.GetBucket("/api/auth/signin")
		if !ok || b != authBucket {
			t.Fatal("auth path lookup is not stable on the narrow bucket")
		}
	}

	authBucket.TakeAvailable(2)
	for i := 0; i < 50; i++ {
		b, _ := l.GetBucket("/api/auth/signup")
		if got := b.TakeAvailable(1); got != 0 {
			t.Fatalf("exhausted auth bucket handed out a token on try %d", i)
		}
	}

	// Non-auth api paths still draw from the broad bucket.
	apiBucket, ok := l.GetBucket("/api/notes")
	if !ok {
		t.Fatal("api path matched no bucket")
	}
	if apiBucket == authBucket {
		t.Fatal("api path resolved to the auth bucket")
	}
	if got := apiBucket.TakeAvailable(1); got != 1 {
		t.Errorf("api bucket take = %d, want 1", got)
	}
}
