// file: cmd/sync/main.go
//
// CLI untuk menjalankan sinkronisasi dari cron/terminal tanpa lewat HTTP.
//
//	sync --partner all --direction pull
//	sync --partner 3f2a... --form-type events
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"anadash_backend/internals/configs"
	"anadash_backend/internals/constants"
	database "anadash_backend/internals/databases"
	partnerModel "anadash_backend/internals/features/partners/model"
	syncModel "anadash_backend/internals/features/sync/model"
	"anadash_backend/internals/features/sync/service"
)

var (
	flagPartner   string
	flagDirection string
	flagFormType  string
	flagInput     string
	flagTimeout   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sync",
		Short: "Tarik submission dari form API dan rekonsiliasi ke database dashboard",
		RunE:  runSync,
	}

	rootCmd.Flags().StringVar(&flagPartner, "partner", "all", "UUID partner, atau 'all' untuk semua partner aktif")
	rootCmd.Flags().StringVar(&flagDirection, "direction", "pull", "Arah sinkronisasi: pull, push, atau both")
	rootCmd.Flags().StringVar(&flagFormType, "form-type", constants.FormTypeAll, "Form type spesifik, atau 'all'")
	rootCmd.Flags().StringVar(&flagInput, "input", "", "File JSON berisi array payload untuk direction push/both")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Minute, "Batas waktu total run")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	doPull := flagDirection == "pull" || flagDirection == "both"
	doPush := flagDirection == "push" || flagDirection == "both"
	if !doPull && !doPush {
		return fmt.Errorf("direction harus pull, push, atau both; dapat: %s", flagDirection)
	}
	if !constants.IsKnownFormType(flagFormType) {
		return fmt.Errorf("form type tidak dikenal: %s", flagFormType)
	}

	var payloads []map[string]any
	if doPush {
		if flagFormType == constants.FormTypeAll {
			return fmt.Errorf("push butuh --form-type spesifik, bukan all")
		}
		if flagInput == "" {
			return fmt.Errorf("push butuh --input berisi array payload JSON")
		}
		raw, err := os.ReadFile(flagInput)
		if err != nil {
			return fmt.Errorf("gagal baca %s: %w", flagInput, err)
		}
		if err := json.Unmarshal(raw, &payloads); err != nil {
			return fmt.Errorf("isi %s bukan array JSON: %w", flagInput, err)
		}
	}

	configs.LoadEnv()
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		return fmt.Errorf("auto-migration gagal: %w", err)
	}

	partners, err := resolvePartners(database.DB, flagPartner)
	if err != nil {
		return err
	}
	if len(partners) == 0 {
		log.Println("[INFO] Tidak ada partner aktif, tidak ada yang di-sync")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	totalProcessed := 0
	totalFailed := 0
	anySuccess := false

	for i := range partners {
		p := &partners[i]
		log.Printf("[INFO] Sync partner %s (%s)...", p.PartnerName, p.PartnerID)
		svc := service.NewSyncServiceForPartner(database.DB, p)

		if doPull {
			result, err := svc.PullFromSource(ctx, p, flagFormType)
			if err != nil {
				log.Printf("[ERROR] Partner %s: %v", p.PartnerName, err)
				totalFailed++
				continue
			}

			totalProcessed += result.RecordsProcessed
			totalFailed += result.RecordsFailed
			if result.Status != syncModel.SyncRunStatusFailed {
				anySuccess = true
			}

			log.Printf("[INFO] Partner %s pull selesai: status=%s processed=%d failed=%d (events=%d participants=%d ea=%d farmers=%d checklist=%d)",
				p.PartnerName, result.Status, result.RecordsProcessed, result.RecordsFailed,
				result.Events, result.Participants, result.ExtensionAgents, result.Farmers, result.Checklists)
			for _, e := range result.Errors {
				log.Printf("[WARN]   %s", e)
			}
		}

		if doPush {
			result, err := svc.PushToSource(ctx, p, flagFormType, payloads)
			if err != nil {
				log.Printf("[ERROR] Partner %s push: %v", p.PartnerName, err)
				totalFailed++
				continue
			}

			totalProcessed += result.Submitted
			totalFailed += result.Failed
			if result.Status != syncModel.SyncRunStatusFailed {
				anySuccess = true
			}

			log.Printf("[INFO] Partner %s push selesai: status=%s submitted=%d failed=%d",
				p.PartnerName, result.Status, result.Submitted, result.Failed)
			for _, e := range result.Errors {
				log.Printf("[WARN]   %s", e)
			}
		}
	}

	log.Printf("[INFO] Total: processed=%d failed=%d partner=%d", totalProcessed, totalFailed, len(partners))

	if !anySuccess {
		return fmt.Errorf("semua run gagal (%d partner)", len(partners))
	}
	return nil
}

func resolvePartners(db *gorm.DB, arg string) ([]partnerModel.PartnerModel, error) {
	var partners []partnerModel.PartnerModel

	if arg == "all" {
		if err := db.Where("partner_is_active = ?", true).
			Order("partner_name ASC").
			Find(&partners).Error; err != nil {
			return nil, fmt.Errorf("gagal ambil daftar partner: %w", err)
		}
		return partners, nil
	}

	id, err := uuid.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("--partner harus UUID atau 'all': %s", arg)
	}

	var p partnerModel.PartnerModel
	if err := db.First(&p, "partner_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("partner %s tidak ditemukan: %w", id, err)
	}
	if !p.PartnerIsActive {
		return nil, fmt.Errorf("partner %s nonaktif", p.PartnerName)
	}
	return []partnerModel.PartnerModel{p}, nil
}
