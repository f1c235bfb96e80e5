package limiter

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// MethodLimiter buckets requests by URI prefix.
type MethodLimiter struct {
	*Limiter
}

func NewMethodLimiter() Face {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: map[string]*ratelimit.Bucket{}},
	}
}

// Key strips the query string and returns the request path.
func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	index := strings.Index(uri, "?")
	if index == -1 {
		return uri
	}
	return uri[:index]
}

// GetBucket returns the bucket whose key is the longest prefix of key,
// so an overlapping narrower rule always wins over a broader one.
func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	var (
		bucket  *ratelimit.Bucket
		longest = -1
	)
	for prefix, b := range l.limiterBuckets {
		if strings.HasPrefix(key, prefix) && len(prefix) > longest {
			longest = len(prefix)
			bucket = b
		}
	}
	return bucket, bucket != nil
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
