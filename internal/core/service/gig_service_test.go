package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubGigRepo struct {
	gigs   map[int64]*domain.Gig
	nextID int64
}

func newStubGigRepo() *stubGigRepo {
	return &stubGigRepo{gigs: make(map[int64]*domain.Gig)}
}

func (r *stubGigRepo) Create(_ context.Context, gig *domain.Gig) (*domain.Gig, error) {
	r.nextID++
	clone := *gig
	clone.ID = r.nextID
	r.gigs[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubGigRepo) FindByID(_ context.Context, id int64) (*domain.Gig, error) {
	if g, ok := r.gigs[id]; ok {
		clone := *g
		return &clone, nil
	}
	return nil, domain.ErrGigNotFound
}

func (r *stubGigRepo) List(_ context.Context, category string) ([]domain.Gig, error) {
	var out []domain.Gig
	for _, g := range r.gigs {
		if !g.IsActive {
			continue
		}
		if category != "" && g.Category != category {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGigRepo) Update(_ context.Context, gig *domain.Gig) (*domain.Gig, error) {
	if _, ok := r.gigs[gig.ID]; !ok {
		return nil, domain.ErrGigNotFound
	}
	clone := *gig
	r.gigs[gig.ID] = &clone
	updated := clone
	return &updated, nil
}

func (r *stubGigRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.gigs[id]; !ok {
		return domain.ErrGigNotFound
	}
	delete(r.gigs, id)
	return nil
}

func TestGigService_Create_Defaults(t *testing.T) {
	svc := NewGigService(newStubGigRepo(), zerolog.Nop())

	gig, err := svc.Create(context.Background(), ports.CreateGigInput{
		Title:        "Logo design",
		Price:        120,
		FreelancerID: 7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !gig.IsActive {
		t.Fatalf("new gig should be active")
	}
	if gig.DeliveryDays != 7 {
		t.Fatalf("expected default delivery of 7 days, got %d", gig.DeliveryDays)
	}
}

func TestGigService_List_FiltersByCategory(t *testing.T) {
	repo := newStubGigRepo()
	svc := NewGigService(repo, zerolog.Nop())

	for _, in := range []ports.CreateGigInput{
		{Title: "Logo", Category: "design", Price: 100, FreelancerID: 7},
		{Title: "API", Category: "dev", Price: 300, FreelancerID: 7},
	} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed gig: %v", err)
		}
	}

	gigs, err := svc.List(context.Background(), "design")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(gigs) != 1 || gigs[0].Category != "design" {
		t.Fatalf("expected single design gig, got %+v", gigs)
	}
}

func TestGigService_Update_OwnerOnly(t *testing.T) {
	repo := newStubGigRepo()
	svc := NewGigService(repo, zerolog.Nop())

	gig, err := svc.Create(context.Background(), ports.CreateGigInput{Title: "Logo", Price: 100, FreelancerID: 7})
	if err != nil {
		t.Fatalf("seed gig: %v", err)
	}

	title := "Logo and branding"
	if _, err := svc.Update(context.Background(), ports.UpdateGigInput{GigID: gig.ID, ActorID: 8, Title: &title}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	price := 150.0
	updated, err := svc.Update(context.Background(), ports.UpdateGigInput{GigID: gig.ID, ActorID: 7, Title: &title, Price: &price})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != title || updated.Price != price {
		t.Fatalf("partial update not applied: %+v", updated)
	}
	if updated.DeliveryDays != gig.DeliveryDays {
		t.Fatalf("untouched field changed: %d", updated.DeliveryDays)
	}
}

func TestGigService_Delete(t *testing.T) {
	repo := newStubGigRepo()
	svc := NewGigService(repo, zerolog.Nop())

	gig, err := svc.Create(context.Background(), ports.CreateGigInput{Title: "Logo", Price: 100, FreelancerID: 7})
	if err != nil {
		t.Fatalf("seed gig: %v", err)
	}

	if err := svc.Delete(context.Background(), gig.ID, 8); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), gig.ID, 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), gig.ID); err != domain.ErrGigNotFound {
		t.Fatalf("expected ErrGigNotFound after delete, got %v", err)
	}
}
