package kepabeanan

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bridgewms/kepabeanan-api/internal/application/dto"
	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
	domainkepabeanan "github.com/bridgewms/kepabeanan-api/internal/domain/kepabeanan"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
)

// MutationUseCase folds the movement ledger into the per-item mutasi rows of
// the kepabeanan reports (opening balance, inbound, outbound, adjustment,
// book balance, physical opname, variance).
type MutationUseCase struct {
	movRepo  repository.MovementRepository
	itemRepo repository.ItemRepository
}

// NewMutationUseCase builds the aggregation engine.
func NewMutationUseCase(movRepo repository.MovementRepository, itemRepo repository.ItemRepository) *MutationUseCase {
	return &MutationUseCase{movRepo: movRepo, itemRepo: itemRepo}
}

// Aggregate runs the mutation aggregation over the ledger.
//
// Movements are filtered by date range and item substring first, then by the
// classification allow-list when a group is requested. Rows come out in
// first-seen order of each item code; descriptive fields are seeded from the
// first movement of the code and later movements never overwrite them.
// Opening balance is always zero: no historical carry-forward is computed,
// and with no stock-take source wired in the physical opname equals the book
// balance, leaving variance at zero.
func (uc *MutationUseCase) Aggregate(filter dto.MutationFilter) (*dto.MutationAggregateResponse, error) {
	movements, err := uc.movRepo.List(repository.MovementFilter{
		Start: filter.Start,
		End:   filter.End,
		Item:  filter.Item,
	})
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}

	if group := strings.TrimSpace(filter.Group); group != "" {
		allowed, err := uc.resolveGroupCodes(group, movements)
		if err != nil {
			return nil, err
		}
		// An empty allow-list means the heuristics recognized nothing for
		// this group; the filter degrades to no-filter instead of emptying
		// the report.
		if len(allowed) > 0 {
			kept := movements[:0]
			for _, m := range movements {
				if allowed[m.ItemCode] {
					kept = append(kept, m)
				}
			}
			movements = kept
		}
	}

	rowIndex := map[string]int{}
	rows := []dto.MutationRow{}
	for _, m := range movements {
		idx, ok := rowIndex[m.ItemCode]
		if !ok {
			idx = len(rows)
			rowIndex[m.ItemCode] = idx
			rows = append(rows, dto.MutationRow{
				ItemCode: m.ItemCode,
				ItemName: m.ItemName,
				Unit:     orDefault(m.Unit, "unit"),
				WIPStage: m.WIPStage,
				Location: m.Location,
				Area:     m.Area,
				Lot:      m.Lot,
				Rack:     m.Rack,
			})
		}
		switch m.MovementType {
		case entity.MovementTypeIN:
			rows[idx].Inbound = rows[idx].Inbound.Add(m.Qty)
		case entity.MovementTypeOUT:
			rows[idx].Outbound = rows[idx].Outbound.Add(m.Qty)
		case entity.MovementTypeADJ:
			rows[idx].Adjustment = rows[idx].Adjustment.Add(m.Qty)
		}
		// Any other movement type contributes to no bucket.
	}

	summary := dto.MutationSummary{
		TotalRows:     len(rows),
		TotalInbound:  decimal.Zero,
		TotalOutbound: decimal.Zero,
	}
	for i := range rows {
		r := &rows[i]
		r.BookBalance = r.OpeningBalance.Add(r.Inbound).Sub(r.Outbound).Add(r.Adjustment)
		r.PhysicalOpname = r.BookBalance
		r.Variance = r.PhysicalOpname.Sub(r.BookBalance)
		summary.TotalInbound = summary.TotalInbound.Add(r.Inbound)
		summary.TotalOutbound = summary.TotalOutbound.Add(r.Outbound)
	}

	return &dto.MutationAggregateResponse{Ok: true, Rows: rows, Summary: summary}, nil
}

// resolveGroupCodes builds the allow-list of item codes for a classification
// group as the union of three sources: master records whose stored group
// matches, master records matching the naming heuristic, and the movements'
// own code/name matched by the same heuristic (catches items never
// registered in the master).
func (uc *MutationUseCase) resolveGroupCodes(group string, movements []entity.Movement) (map[string]bool, error) {
	allowed := map[string]bool{}

	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	for _, it := range items {
		if strings.EqualFold(it.ItemGroup, group) {
			allowed[it.ItemCode] = true
			continue
		}
		if domainkepabeanan.MatchesGroup(it.ItemCode, it.ItemName, group) {
			allowed[it.ItemCode] = true
		}
	}

	for _, m := range movements {
		if domainkepabeanan.MatchesGroup(m.ItemCode, m.ItemName, group) {
			allowed[m.ItemCode] = true
		}
	}

	return allowed, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
