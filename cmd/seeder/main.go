package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/tvalik/scoreline/internal/scorecard"
	"github.com/tvalik/scoreline/internal/tournament"
	"github.com/vmihailenco/msgpack/v5"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

// syntheticCourse builds an 18-hole layout with plausible distances.
func syntheticCourse() []scorecard.Hole {
	course := make([]scorecard.Hole, 0, scorecard.HoleCount)
	for i := 1; i <= scorecard.HoleCount; i++ {
		par := 3
		if i%5 == 0 {
			par = 4
		}
		course = append(course, scorecard.Hole{
			Number: i,
			Length: 60 + rand.Intn(120),
			Par:    par,
		})
	}
	return course
}

// syntheticRound builds one round of records for the given players, with hole
// scores scattered around par.
func syntheticRound(players []string, course []scorecard.Hole) []scorecard.RoundRecord {
	records := make([]scorecard.RoundRecord, 0, len(players))
	for i, name := range players {
		total := 0
		holeScores := make([]string, 0, scorecard.HoleCount)
		for _, hole := range course {
			score := hole.Par + rand.Intn(3) - 1
			total += score - hole.Par
			holeScores = append(holeScores, fmt.Sprintf("%d", score))
		}
		totalStr := "E"
		if total != 0 {
			totalStr = fmt.Sprintf("%+d", total)
		}
		records = append(records, scorecard.RoundRecord{
			Place:      fmt.Sprintf("%d", i+1),
			Name:       name,
			TotalScore: totalStr,
			RoundScore: totalStr,
			HoleScores: holeScores,
			Rating:     fmt.Sprintf("%d", 900+rand.Intn(200)),
		})
	}
	return records
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	players := []string{
		"Seeder Player A",
		"Seeder Player B",
		"Seeder Player C",
		"Seeder Player D",
	}

	const batchSize = 100 // Insert 100 tournaments at a time
	const numTournaments = 10000

	log.Info("Preparing to insert dummy tournaments...", "total", numTournaments, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*10) // 10 columns per tournament

	for i := 0; i < numTournaments; i++ {
		importedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
		course := syntheticCourse()
		rounds := [][]scorecard.RoundRecord{
			syntheticRound(players, course),
			syntheticRound(players, course),
		}
		courseBlob, _ := msgpack.Marshal(course)
		roundsBlob, _ := msgpack.Marshal(rounds)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			fmt.Sprintf("%d_%s.csv", importedAt.Year(), uuid.NewString()),
			uuid.NewString(),
			fmt.Sprintf("Seeded Open #%d", i+1),
			importedAt.Format("2.1.2006"),
			"Seeded Course",
			"Round 2 finished",
			courseBlob,
			roundsBlob,
			importedAt.Unix(),
			tournament.StatusCompleted,
		)

		if (i+1)%batchSize == 0 || (i+1) == numTournaments {
			stmt := fmt.Sprintf(`
				INSERT INTO tournaments (file, content_hash, name, date, location, round_info,
					course_blob, rounds_blob, imported_at, processing_status)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*10)
			log.Info("Inserted batch", "completed", i+1, "total", numTournaments)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy tournaments.", "duration", duration)
}
