package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	wroteHeader  bool
	bytesWritten int
	maxLogBytes  int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	if !r.wroteHeader {
		r.statusCode = statusCode
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n

	// Only a bounded prefix of the body is kept for the log line.
	if room := r.maxLogBytes - r.logBody.Len(); room > 0 {
		if n > room {
			r.logBody.Write(p[:room])
			r.truncated = true
		} else {
			r.logBody.Write(p[:n])
		}
	} else if n > 0 {
		r.truncated = true
	}
	return n, err
}

func withRequestLogging(next http.Handler, maxLogBytes int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLogBytes,
		}

		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				if !recorder.wroteHeader {
					writeJSON(recorder, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
				}
			}

			suffix := ""
			if recorder.truncated {
				suffix = "...(truncated)"
			}
			log.Printf(
				"%s %s status=%d bytes=%d duration=%s body=%q%s",
				r.Method,
				r.URL.RequestURI(),
				recorder.statusCode,
				recorder.bytesWritten,
				time.Since(start).Round(time.Microsecond),
				bytes.TrimSpace(recorder.logBody.Bytes()),
				suffix,
			)
		}()

		next.ServeHTTP(recorder, r)
	})
}
