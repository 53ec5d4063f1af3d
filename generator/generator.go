// Package generator feeds the simulator with randomized sensor
// readings so the monitor has live data to poll during development.
package generator

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/iroro1/et-mobile-new/catalog"
	"github.com/iroro1/et-mobile-new/controllers"
	"github.com/iroro1/et-mobile-new/models"
	"github.com/iroro1/et-mobile-new/utils"

	"gorm.io/gorm"
)

const (
	defaultInterval = 10 * time.Second

	// excursionChance is the probability that a produced value lands
	// outside the sensor's default alert range.
	excursionChance = 0.1
	fireChance      = 0.02
)

var random = rand.New(rand.NewSource(time.Now().UnixNano()))

type Generator struct {
	db       *gorm.DB
	interval time.Duration
}

func New(db *gorm.DB, interval time.Duration) *Generator {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Generator{db: db, interval: interval}
}

// Run produces one reading per catalog entry on every tick until the
// context is cancelled. Readings breaching a configured threshold also
// produce a notification, mirroring what the production backend does
// upstream.
func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.emit()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.emit()
		}
	}
}

func (g *Generator) emit() {
	var thresholds []models.SensorThreshold
	if err := g.db.Find(&thresholds).Error; err != nil {
		log.Printf("generator: loading thresholds: %v", err)
		return
	}

	now := time.Now().UTC()
	for i, sensorType := range catalog.Types {
		info := catalog.Lookup(sensorType)
		reading := models.SensorReading{
			SensorID:   uint(i + 1),
			SensorType: sensorType,
			Value:      g.value(info),
			Unit:       info.Unit,
			Timestamp:  now,
		}
		if err := g.db.Create(&reading).Error; err != nil {
			log.Printf("generator: storing %s reading: %v", sensorType, err)
			continue
		}
		controllers.BroadcastReading(reading)

		if utils.IsReadingAlert(reading, thresholds) {
			notification := models.Notification{
				SensorType: sensorType,
				Message:    breachMessage(info, reading),
				Severity:   utils.AlertSeverity(reading),
				Timestamp:  now,
			}
			if err := g.db.Create(&notification).Error; err != nil {
				log.Printf("generator: storing notification: %v", err)
				continue
			}
			controllers.BroadcastNotification(notification)
		}
	}
}

// value picks a reading mostly inside the sensor's default alert
// range, with occasional excursions kept within the physical domain.
func (g *Generator) value(info catalog.SensorInfo) float64 {
	if info.Type == models.FireDetection {
		if random.Float64() < fireChance {
			return 1
		}
		return 0
	}

	if random.Float64() < excursionChance {
		if random.Float64() < 0.5 && info.DefaultMin > info.MinValue {
			return info.MinValue + random.Float64()*(info.DefaultMin-info.MinValue)
		}
		return info.DefaultMax + random.Float64()*(info.MaxValue-info.DefaultMax)
	}
	return info.DefaultMin + random.Float64()*(info.DefaultMax-info.DefaultMin)
}

func breachMessage(info catalog.SensorInfo, reading models.SensorReading) string {
	if reading.SensorType == models.FireDetection {
		return "Fire or smoke detected!"
	}
	return fmt.Sprintf("%s reading %.2f%s is outside the configured range", info.Name, reading.Value, info.Unit)
}
