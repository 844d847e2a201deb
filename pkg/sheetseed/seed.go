package sheetseed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/dealerworks/sheetseed/pkg/sheetseed/config"
	"github.com/dealerworks/sheetseed/pkg/sheetseed/models"
	"github.com/dealerworks/sheetseed/pkg/sheetseed/parser"
	"github.com/dealerworks/sheetseed/pkg/sheetseed/supabase"
)

// Backend tables, one per record type.
const (
	TableEvents      = "events"
	TableRoster      = "roster"
	TableLenders     = "lenders"
	TableInventory   = "vehicle_inventory"
	TableDeals       = "deals_v2"
	TableMail        = "mail_tracking"
	TableEventConfig = "event_config"
)

// StageReport summarizes one child-table stage.
type StageReport struct {
	Stage     string
	Table     string
	Extracted int
	// Written counts records in chunks the backend accepted. It is an
	// attempted count, not a persistence guarantee.
	Written int
	// FailedChunks counts rejected insert calls; their records are not
	// retried.
	FailedChunks int
}

// Report is the outcome of a full run.
type Report struct {
	Resolution Resolution
	Stages     []StageReport
	DryRun     bool
}

// Seeder drives the pipeline: resolve the parent event, then extract and
// write each record set in sequence. Stages run strictly one after another;
// a failed chunk or stage is reported and does not stop later stages.
type Seeder struct {
	cfg    *config.Config
	client *supabase.Client
	admin  *supabase.Admin
	log    zerolog.Logger
}

// New builds a Seeder and its backend clients from configuration. The
// management client is only wired when the schema-relax fallback is
// enabled.
func New(cfg *config.Config, log zerolog.Logger) *Seeder {
	var admin *supabase.Admin
	if cfg.AllowSchemaRelax {
		admin = supabase.NewAdmin(cfg.MgmtURL, cfg.MgmtToken, cfg.ProjectRef, log)
	}
	return NewWithClients(cfg, supabase.New(cfg.SupabaseURL, cfg.ServiceKey, log), admin, log)
}

// NewWithClients builds a Seeder around existing clients.
func NewWithClients(cfg *config.Config, client *supabase.Client, admin *supabase.Admin, log zerolog.Logger) *Seeder {
	return &Seeder{
		cfg:    cfg,
		client: client,
		admin:  admin,
		log:    log.With().Str("component", "seeder").Logger(),
	}
}

// Run executes the pipeline against one workbook. It returns an error only
// for unrecoverable conditions: an unreadable workbook, a broken sheet
// mapping, or no parent event id. Child-table write failures are recorded
// in the report and logged, not returned.
func (s *Seeder) Run(ctx context.Context, workbookPath string, opts Options) (*Report, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rep := &Report{DryRun: opts.DryRun}

	if !opts.DryRun {
		resolver := NewResolver(s.client, s.admin, s.cfg.Event, s.cfg.EventSlug(), s.log)
		res, err := resolver.Resolve(ctx)
		if err != nil {
			return nil, &StageError{Stage: "event", Err: err}
		}
		rep.Resolution = *res
	}
	eventID := rep.Resolution.EventID

	roster, err := parser.ExtractRoster(f, eventID, parser.RosterParams{
		Roles:         s.cfg.Roster.Roles,
		CommissionPct: s.cfg.Roster.CommissionPct,
	})
	if err != nil {
		return rep, &StageError{Stage: "roster", Err: err}
	}
	runStage(ctx, s, rep, "roster", TableRoster, "event_id,name", roster, opts)

	lenders, err := parser.ExtractLenders(f, eventID)
	if err != nil {
		return rep, &StageError{Stage: "lenders", Err: err}
	}
	runStage(ctx, s, rep, "lenders", TableLenders, "event_id,name", lenders, opts)

	inventory, err := parser.ExtractInventory(f, eventID)
	if err != nil {
		return rep, &StageError{Stage: "inventory", Err: err}
	}
	runStage(ctx, s, rep, "inventory", TableInventory, "event_id,stock_number", inventory, opts)

	deals, err := parser.ExtractDeals(f, eventID)
	if err != nil {
		return rep, &StageError{Stage: "deals", Err: err}
	}
	runStage(ctx, s, rep, "deals", TableDeals, "event_id,deal_number", deals, opts)

	mail, err := parser.ExtractMailTracking(f, eventID, s.cfg.Campaign)
	if err != nil {
		return rep, &StageError{Stage: "mail_tracking", Err: err}
	}
	runStage(ctx, s, rep, "mail_tracking", TableMail, "event_id,zip_code", mail, opts)

	eventConfig := s.eventConfigRecord(eventID)
	runStage(ctx, s, rep, "event_config", TableEventConfig, "event_id", []models.EventConfig{eventConfig}, opts)

	s.log.Info().Msg("seeding complete")
	return rep, nil
}

func (s *Seeder) eventConfigRecord(eventID string) models.EventConfig {
	p := s.cfg.Sale
	return models.EventConfig{
		EventID:          eventID,
		DealerName:       p.DealerName,
		Franchise:        p.Franchise,
		City:             p.City,
		State:            p.State,
		Zip:              p.Zip,
		SaleDays:         p.SaleDays,
		DocFee:           p.DocFee,
		TaxRate:          p.TaxRate,
		Pack:             p.Pack,
		MailTitle:        p.MailTitle,
		MailPieces:       p.MailPieces,
		JDECommissionPct: p.JDECommissionPct,
		RepCommissionPct: p.RepCommissionPct,
		TargetUnits:      p.TargetUnits,
		TargetAvgGross:   p.TargetAvgGross,
	}
}

// runStage writes one record set in chunks of cfg.ChunkSize, upserting on
// the stage's natural key. Rejected chunks are logged and skipped; later
// chunks still go out.
func runStage[T any](ctx context.Context, s *Seeder, rep *Report, stage, table, conflictKey string, records []T, opts Options) {
	sr := StageReport{Stage: stage, Table: table, Extracted: len(records)}
	defer func() {
		rep.Stages = append(rep.Stages, sr)
		s.log.Info().
			Str("stage", stage).
			Int("extracted", sr.Extracted).
			Int("written", sr.Written).
			Int("failed_chunks", sr.FailedChunks).
			Msg("stage done")
	}()

	if opts.DryRun || len(records) == 0 {
		return
	}

	size := s.cfg.ChunkSize
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]
		if _, err := s.client.Insert(ctx, table, chunk, supabase.InsertOptions{OnConflict: conflictKey}); err != nil {
			sr.FailedChunks++
			s.log.Error().Err(err).Str("stage", stage).Int("chunk_start", start).Msg("chunk rejected")
			continue
		}
		sr.Written += len(chunk)
	}
}
