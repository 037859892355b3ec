// Package main fills a development database with fake athletes, 60 days of
// training data per athlete and a few injuries.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/config"
	"github.com/shreyajaiswal17/athletehub/internal/db"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

const seedDays = 60

var (
	sports    = []string{"football", "basketball", "rugby", "tennis", "athletics", "swimming", "cycling", "weightlifting", "cricket"}
	genders   = []string{string(athletes.GenderMale), string(athletes.GenderFemale)}
	bodyParts = []string{"hamstring", "knee", "ankle", "shoulder", "lower back", "groin"}
)

func main() {
	env := flag.String("env", "development", "environment [dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	athletesCount := flag.Int("athletes", 20, "number of athletes to create")
	seed := flag.Int64("seed", 0, "random seed, 0 picks a random one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.Environment == "production" || cfg.Environment == "prod" {
		log.Fatalf("refusing to seed the production database")
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate: %s", err)
	}

	gofakeit.Seed(*seed)

	s := &seeder{
		athletes: athletes.NewRepo(dbPool, workload.CanonicalSport),
		records:  performance.NewRepo(dbPool),
		injuries: injuries.NewRepo(dbPool),
		now:      time.Now().UTC(),
	}
	for i := 0; i < *athletesCount; i++ {
		if err := s.seedAthlete(ctx); err != nil {
			log.Fatalf("seed athlete %d: %s", i, err)
		}
	}
	log.Infof("seeded %d athletes, %d records, %d injuries", *athletesCount, s.recordsAdded, s.injuriesAdded)
}

type seeder struct {
	athletes *athletes.Repo
	records  *performance.Repo
	injuries *injuries.Repo
	now      time.Time

	recordsAdded  int
	injuriesAdded int
}

func (s *seeder) seedAthlete(ctx context.Context) error {
	gender := gofakeit.RandomString(genders)
	athlete, err := s.athletes.Add(ctx, athletes.Athlete{
		Name:     gofakeit.Name(),
		Age:      gofakeit.Number(17, 38),
		Gender:   athletes.Gender(gender),
		Sport:    gofakeit.RandomString(sports),
		Position: gofakeit.JobDescriptor(),
		HeightCm: float64(gofakeit.Number(160, 200)),
		WeightKg: float64(gofakeit.Number(55, 105)),
	})
	if err != nil {
		return err
	}

	// each athlete gets a baseline that drifts a little day to day
	baseDuration := gofakeit.Number(45, 90)
	baseIntensity := gofakeit.Number(4, 7)
	restingHR := gofakeit.Number(45, 65)

	for day := seedDays - 1; day >= 0; day-- {
		// roughly one rest day a week
		if gofakeit.Number(1, 7) == 1 {
			continue
		}
		date := s.now.AddDate(0, 0, -day).Truncate(24 * time.Hour).Add(time.Duration(gofakeit.Number(7, 19)) * time.Hour)
		intensity := clampInt(baseIntensity+gofakeit.Number(-2, 3), 1, 10)
		avgHR := clampInt(110+intensity*7+gofakeit.Number(-8, 8), 90, 195)
		if _, err := s.records.Add(ctx, performance.Record{
			AthleteID:        athlete.ID,
			Date:             date,
			DurationMinutes:  clampInt(baseDuration+gofakeit.Number(-20, 30), 15, 180),
			Intensity:        intensity,
			AvgHeartRate:     avgHR,
			MaxHeartRate:     clampInt(avgHR+gofakeit.Number(10, 25), avgHR, 205),
			RestingHeartRate: clampInt(restingHR+gofakeit.Number(-3, 4), 35, 90),
			SleepHours:       float64(gofakeit.Number(50, 95)) / 10,
			Soreness:         clampInt(intensity-3+gofakeit.Number(-2, 2), 0, 10),
			DistanceKm:       float64(gofakeit.Number(0, 150)) / 10,
			Calories:         gofakeit.Number(300, 1200),
			Notes:            gofakeit.Sentence(6),
		}); err != nil {
			return err
		}
		s.recordsAdded++
	}

	// about a third of the athletes carry an injury, half of those already healed
	if gofakeit.Number(1, 3) != 1 {
		return nil
	}
	injuredAt := s.now.AddDate(0, 0, -gofakeit.Number(3, 50))
	injury, err := s.injuries.Add(ctx, injuries.Injury{
		AthleteID:   athlete.ID,
		BodyPart:    gofakeit.RandomString(bodyParts),
		Description: gofakeit.Sentence(5),
		Severity:    injuries.Severity(gofakeit.RandomString([]string{"minor", "moderate", "severe"})),
		InjuredAt:   injuredAt,
	})
	if err != nil {
		return err
	}
	s.injuriesAdded++

	if gofakeit.Bool() {
		recoveredAt := injuredAt.AddDate(0, 0, gofakeit.Number(7, 30))
		if recoveredAt.After(s.now) {
			recoveredAt = s.now
		}
		if _, err := s.injuries.MarkRecovered(ctx, injury.ID, recoveredAt); err != nil {
			return err
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
