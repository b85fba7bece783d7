package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SimulatorConfig holds the runtime parameters of the telemetry generator.
type SimulatorConfig struct {
	ServerURL  string
	BatteryIDs []uint
	Interval   time.Duration
	CycleBase  int
}

// Simulator emulates the periodic health reports a battery management
// system would push to the backend for a set of batteries.
type Simulator struct {
	config *SimulatorConfig
	client *http.Client
	logger *zap.Logger
	cycles map[uint]int
	done   chan struct{}
}

func NewSimulator(config *SimulatorConfig, logger *zap.Logger) *Simulator {
	cycles := make(map[uint]int, len(config.BatteryIDs))
	for _, id := range config.BatteryIDs {
		cycles[id] = config.CycleBase + rand.Intn(50)
	}
	return &Simulator{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
		cycles: cycles,
		done:   make(chan struct{}),
	}
}

// Run publishes one report per battery immediately, then on every tick
// until Stop is called.
func (s *Simulator) Run() {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.reportAll()

	for {
		select {
		case <-ticker.C:
			s.reportAll()
		case <-s.done:
			return
		}
	}
}

func (s *Simulator) Stop() {
	close(s.done)
}

func (s *Simulator) reportAll() {
	for _, batteryID := range s.config.BatteryIDs {
		if err := s.report(batteryID); err != nil {
			s.logger.Error("Failed to send health log",
				zap.Uint("battery_id", batteryID),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("Health log sent", zap.Uint("battery_id", batteryID))
	}
}

func (s *Simulator) report(batteryID uint) error {
	payload := s.generateHealthLog(batteryID)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal health log: %w", err)
	}

	url := s.config.ServerURL + "/api/battery_health_logs"
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post health log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// generateHealthLog produces a plausible BMS snapshot. State of health
// degrades slowly with the accumulated cycle count; voltages and
// temperatures jitter around nominal values for a 72V LiFePO4 pack.
func (s *Simulator) generateHealthLog(batteryID uint) map[string]interface{} {
	s.cycles[batteryID]++
	cycleCount := s.cycles[batteryID]

	soh := 100.0 - float64(cycleCount)*0.01 - rand.Float64()*0.5
	if soh < 70 {
		soh = 70
	}

	packVoltage := 72.0 + rand.Float64()*8.0
	cellAvg := packVoltage / 20.0
	cellMin := cellAvg - rand.Float64()*0.05
	cellMax := cellAvg + rand.Float64()*0.05
	ambient := 22.0 + rand.Float64()*10.0

	return map[string]interface{}{
		"battery_id":        batteryID,
		"soh_percent":       round2(soh),
		"pack_voltage":      round2(packVoltage),
		"cell_voltage_min":  round3(cellMin),
		"cell_voltage_max":  round3(cellMax),
		"cell_voltage_diff": round3(cellMax - cellMin),
		"max_temp":          round2(ambient + 3.0 + rand.Float64()*12.0),
		"ambient_temp":      round2(ambient),
		"humidity":          round2(40.0 + rand.Float64()*30.0),
		"internal_resist":   round3(0.05 + rand.Float64()*0.02),
		"cycle_count":       cycleCount,
	}
}

func round2(v float64) float64 {
	return float64(int(v*100)) / 100
}

func round3(v float64) float64 {
	return float64(int(v*1000)) / 1000
}
