// Command smoke probes a running campus-hub instance and reports per-endpoint
// status and latency. Intended for post-deploy checks; exits non-zero when a
// critical endpoint misbehaves.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Method   string
	Path     string
	Body     string
	WantCode int
	Critical bool
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func defaultProbes() []probe {
	return []probe{
		{Method: http.MethodGet, Path: "/health", WantCode: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/ready", WantCode: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/attendance", WantCode: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/materials", WantCode: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/chat/history", WantCode: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/api/timetable/templates", WantCode: http.StatusOK, Critical: false},
		{
			Method:   http.MethodPost,
			Path:     "/api/timetable/generate",
			Body:     `{"subjects":[{"name":"Math","hoursPerWeek":2}],"startHour":9,"endHour":11,"days":["Mon"]}`,
			WantCode: http.StatusOK,
			Critical: true,
		},
		{Method: http.MethodGet, Path: "/metrics", WantCode: http.StatusOK, Critical: false},
	}
}

func main() {
	var (
		base    string
		timeout time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	var failures int
	results := make([]result, 0, len(defaultProbes()))
	for _, p := range defaultProbes() {
		res := run(client, base, p)
		if p.Critical && (res.Err != nil || res.Status != p.WantCode) {
			failures++
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Critical failures: %d\n", failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func run(client *http.Client, base string, p probe) result {
	res := result{Probe: p}

	url := strings.TrimRight(base, "/") + p.Path
	var body io.Reader
	if p.Body != "" {
		body = strings.NewReader(p.Body)
	}
	req, err := http.NewRequest(p.Method, url, body)
	if err != nil {
		res.Err = err
		return res
	}
	if p.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	if data, err := io.ReadAll(resp.Body); err == nil && resp.StatusCode == p.WantCode {
		if err := validJSONOrText(resp.Header.Get("Content-Type"), data); err != nil {
			res.Err = err
		}
	}
	return res
}

func validJSONOrText(contentType string, data []byte) error {
	if !strings.Contains(contentType, "application/json") {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

func printReport(results []result) {
	fmt.Println("Smoke Check Report")
	fmt.Println("==================")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
		} else if res.Status != res.Probe.WantCode {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Probe.Method, res.Probe.Path)
		fmt.Printf("  Status: %d (want %d) in %s | Critical: %t\n", res.Status, res.Probe.WantCode, res.Duration, res.Probe.Critical)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
		}
	}
}
