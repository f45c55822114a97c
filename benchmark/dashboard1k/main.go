package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

var maxClients int = 1000
var httpHostPort string = "127.0.0.1:1080"

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			fetchHealthData()
			fmt.Printf("\rfetched health data %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rfetched health data %v times: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			fetchStudyFocus()
			fmt.Printf("\rfetched study focus %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rfetched study focus %v times: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients)/usedTime.Seconds(),
	)
}

func fetchHealthData() {
	resp, err := http.Get(fmt.Sprintf("http://%s/api/health-data?period=day", httpHostPort))
	if err != nil {
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
}

func fetchStudyFocus() {
	resp, err := http.Get(fmt.Sprintf("http://%s/api/study-focus", httpHostPort))
	if err != nil {
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
}
