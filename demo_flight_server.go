package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// DemoFlightServer is an in-process stand-in for the scheduling backend so
// the tracker can be tried without one. Its flights are laid out around the
// time the server was created.
type DemoFlightServer struct {
	mu      sync.Mutex
	flights map[string]flightResponse
	addr    string
}

func NewDemoFlightServer(clock Clock) *DemoFlightServer {
	if clock == nil {
		clock = systemClock{}
	}
	nowSec := TimeOfDayOf(clock.Now()).Seconds()
	at := func(d time.Duration) string {
		return TimeOfDayFromSeconds(nowSec + int(d/time.Second)).String()
	}

	m := &DemoFlightServer{flights: make(map[string]flightResponse)}
	m.Add(flightResponse{
		FlightNumber: "VN213", DepartureAirport: "SGN", ArrivalAirport: "HAN",
		ActualDepartureTime: at(-50 * time.Minute), ActualArrivalTime: at(70 * time.Minute),
	})
	m.Add(flightResponse{
		FlightNumber: "VJ514", DepartureAirport: "HAN", ArrivalAirport: "DAD",
		ActualDepartureTime: at(-10 * time.Minute), ActualArrivalTime: at(70 * time.Minute),
	})
	m.Add(flightResponse{
		FlightNumber: "QH1521", DepartureAirport: "SGN", ArrivalAirport: "PQC",
		ActualDepartureTime: at(-30 * time.Minute), ActualArrivalTime: at(25 * time.Minute),
	})
	m.Add(flightResponse{
		FlightNumber: "VN1571", DepartureAirport: "HAN", ArrivalAirport: "HPH",
		ActualDepartureTime: at(-5 * time.Minute), ActualArrivalTime: at(25 * time.Minute),
	})
	// Landed and already assigned its next leg.
	m.Add(flightResponse{
		FlightNumber: "VJ120", DepartureAirport: "DAD", ArrivalAirport: "SGN",
		ActualDepartureTime: at(-3 * time.Hour), ActualArrivalTime: at(-90 * time.Minute),
		NextDepartureTime: at(20 * time.Minute),
	})
	return m
}

func (m *DemoFlightServer) Add(fr flightResponse) {
	if fr.ScheduledDepartureTime == "" {
		fr.ScheduledDepartureTime = fr.ActualDepartureTime
	}
	if fr.ScheduledArrivalTime == "" {
		fr.ScheduledArrivalTime = fr.ActualArrivalTime
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights[strings.ToUpper(fr.FlightNumber)] = fr
}

// Start serves on a random loopback port and returns its base URL.
func (m *DemoFlightServer) Start() (string, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("listen: %w", err)
	}
	m.addr = listener.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/flights", m.handleList)
	mux.HandleFunc("GET /api/flights/{number}", m.handleFlight)

	go func() {
		slog.Info("demo flight server started", "addr", m.addr)
		http.Serve(listener, mux)
	}()

	return "http://" + m.addr, nil
}

func (m *DemoFlightServer) handleList(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	numbers := make([]string, 0, len(m.flights))
	for n := range m.flights {
		numbers = append(numbers, n)
	}
	m.mu.Unlock()
	slices.Sort(numbers)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(numbers)
}

func (m *DemoFlightServer) handleFlight(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	fr, ok := m.flights[strings.ToUpper(r.PathValue("number"))]
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown flight"})
		return
	}
	json.NewEncoder(w).Encode(fr)
}
