package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/gin-gonic/gin"
)

// CSVContentType is returned with transformed tables.
const CSVContentType = "text/csv; charset=utf-8"

// TransformCache stores transformed tables keyed by request digest.
// *cache.Cache from github.com/patrickmn/go-cache satisfies it.
type TransformCache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// useDefaultTTL asks the cache for its configured expiration.
const useDefaultTTL time.Duration = 0

// cachedTransform is what the cache holds for one request.
type cachedTransform struct {
	body    []byte
	skipped int
}

// transformKey identifies a request by body digest, factor and policy.
func transformKey(body []byte, factor float64, policy table.Policy) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]) + "/" + strconv.FormatFloat(factor, 'g', -1, 64) + "/" + policy.String()
}

// HandleTransform rescales every duration cell of a CSV table.
//
// POST /api/v1/tables/transform?factor=100&policy=strict
//
// The request body is the CSV table; the response body is the transformed
// CSV. X-Qpa-Cache reports "hit" or "miss" and X-Qpa-Skipped the number of
// cells left unchanged under the skip policy.
func HandleTransform(bounds rescale.Bounds, cache TransformCache, workers int) gin.HandlerFunc {
	return func(c *gin.Context) {
		factor := rescale.DefaultFactor
		if raw := c.Query("factor"); raw != "" {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Invalid speed-up factor", err.Error(), gin.H{"factor": raw})
				return
			}
			factor = f
		}

		policy, err := table.ParsePolicy(c.Query("policy"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid policy", err.Error(), gin.H{"policy": c.Query("policy")})
			return
		}

		r, err := rescale.New(factor, bounds)
		if err != nil {
			respondDomainError(c, err)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respondError(c, http.StatusRequestEntityTooLarge, "Failed to read request body", err.Error(), nil)
			return
		}

		key := transformKey(body, factor, policy)
		if cached, ok := cache.Get(key); ok {
			entry := cached.(*cachedTransform)
			writeCSV(c, entry, "hit")
			return
		}

		src, err := table.Read(bytes.NewReader(body))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid table", err.Error(), nil)
			return
		}

		res, err := table.Transform(c.Request.Context(), src, r.Text, table.Options{Policy: policy, Workers: workers})
		if err != nil {
			logging.Warn("Table transform failed: %v", err)
			respondDomainError(c, err)
			return
		}

		var out bytes.Buffer
		if err := table.Write(&out, res.Table); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to encode table", err.Error(), nil)
			return
		}

		entry := &cachedTransform{body: out.Bytes(), skipped: len(res.Skipped)}
		cache.Set(key, entry, useDefaultTTL)
		logging.Debug("Transformed %d rows by factor %v (%d skipped)", len(src.Rows), factor, entry.skipped)

		writeCSV(c, entry, "miss")
	}
}

func writeCSV(c *gin.Context, entry *cachedTransform, cacheState string) {
	c.Header("X-Qpa-Cache", cacheState)
	c.Header("X-Qpa-Skipped", strconv.Itoa(entry.skipped))
	c.Data(http.StatusOK, CSVContentType, entry.body)
}
