package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// DeleteLeadUseCase removes a lead together with everything that references
// it: saved/prospection memberships and contact history. The cascade is a
// compensated multi-step operation; if any purge fails, already purged
// dependents are restored from a snapshot and the lead row is left intact,
// so callers never observe a partial cascade.
type DeleteLeadUseCase struct {
	Leads       entity.LeadRepository
	Memberships entity.MembershipRepository
	Contacts    entity.ContactRepository
}

func NewDeleteLeadUseCase(
	leads entity.LeadRepository,
	memberships entity.MembershipRepository,
	contacts entity.ContactRepository,
) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Leads:       leads,
		Memberships: memberships,
		Contacts:    contacts,
	}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.Leads.FindByID(ctx, id); err != nil {
		return err
	}

	// Snapshot the dependents before touching anything; the snapshot is the
	// rollback source if a later step fails.
	memberships, err := uc.Memberships.FindByLead(ctx, id)
	if err != nil {
		return err
	}
	records, err := uc.Contacts.FindByLead(ctx, id)
	if err != nil {
		return err
	}

	tx := NewTransaction()

	tx.AddOperation("purge memberships", func(ctx context.Context) error {
		return uc.Memberships.PurgeForLead(ctx, id)
	})
	tx.AddCompensation("restore memberships", func(ctx context.Context) error {
		for _, m := range memberships {
			if err := uc.Memberships.Insert(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})

	tx.AddOperation("purge contact history", func(ctx context.Context) error {
		return uc.Contacts.PurgeForLead(ctx, id)
	})
	tx.AddCompensation("restore contact history", func(ctx context.Context) error {
		for _, r := range records {
			if err := uc.Contacts.Insert(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})

	// The lead row goes last: deleting it is the commit point of the
	// cascade, so there is never a deleted lead with live dependents.
	tx.AddOperation("delete lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, id)
	})

	return tx.Execute(ctx)
}
