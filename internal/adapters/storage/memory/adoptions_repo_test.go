package memory

import (
	"context"
	"testing"
	"time"

	"straysense/internal/domain/adoptions"
	"straysense/internal/domain/animals"
)

func seedAnimal(t *testing.T, repo *AnimalsRepo, id string, status animals.Status) {
	t.Helper()

	err := repo.Create(context.Background(), animals.Animal{
		ID:      id,
		Name:    "Firulais",
		Species: "dog",
		Status:  status,
	})
	if err != nil {
		t.Fatalf("seed animal: %v", err)
	}
}

func TestAdoptionsRepo_Submit_FlipsAnimalStatus(t *testing.T) {
	animalsRepo := NewAnimalsRepo()
	repo := NewAdoptionsRepo(animalsRepo, NewUsersRepo())
	seedAnimal(t, animalsRepo, "animal-1", animals.StatusAvailable)

	err := repo.Submit(context.Background(), adoptions.Adoption{
		ID:              "adoption-1",
		UserID:          "user-1",
		AnimalID:        "animal-1",
		Status:          adoptions.StatusPending,
		ApplicationDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	a, err := animalsRepo.GetByID(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if a.Status != animals.StatusPendingAdoption {
		t.Fatalf("expected pending_adoption, got %s", a.Status)
	}
}

func TestAdoptionsRepo_Submit_RejectsUnavailableAnimal(t *testing.T) {
	animalsRepo := NewAnimalsRepo()
	repo := NewAdoptionsRepo(animalsRepo, NewUsersRepo())
	seedAnimal(t, animalsRepo, "animal-1", animals.StatusAdopted)

	err := repo.Submit(context.Background(), adoptions.Adoption{
		ID:       "adoption-1",
		UserID:   "user-1",
		AnimalID: "animal-1",
		Status:   adoptions.StatusPending,
	})
	if err != adoptions.ErrAnimalNotAvailable {
		t.Fatalf("expected ErrAnimalNotAvailable, got %v", err)
	}

	// Nada quedó escrito.
	if _, err := repo.GetByID(context.Background(), "adoption-1"); err != adoptions.ErrNotFound {
		t.Fatalf("expected no adoption row, got err=%v", err)
	}
}

func TestAdoptionsRepo_Submit_UnknownAnimal(t *testing.T) {
	repo := NewAdoptionsRepo(NewAnimalsRepo(), NewUsersRepo())

	err := repo.Submit(context.Background(), adoptions.Adoption{
		ID:       "adoption-1",
		UserID:   "user-1",
		AnimalID: "ghost",
		Status:   adoptions.StatusPending,
	})
	if err != adoptions.ErrAnimalNotFound {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}

func TestAdoptionsRepo_Submit_DuplicatePendingLeavesOneRow(t *testing.T) {
	animalsRepo := NewAnimalsRepo()
	repo := NewAdoptionsRepo(animalsRepo, NewUsersRepo())
	seedAnimal(t, animalsRepo, "animal-1", animals.StatusAvailable)

	first := adoptions.Adoption{
		ID:       "adoption-1",
		UserID:   "user-1",
		AnimalID: "animal-1",
		Status:   adoptions.StatusPending,
	}
	if err := repo.Submit(context.Background(), first); err != nil {
		t.Fatalf("Submit #1 error: %v", err)
	}

	// El segundo intento choca antes con el status del animal; forzamos
	// el caso de duplicado dejando al animal available de nuevo.
	a, _ := animalsRepo.GetByID(context.Background(), "animal-1")
	a.Status = animals.StatusAvailable
	_ = animalsRepo.Update(context.Background(), a)

	second := first
	second.ID = "adoption-2"
	if err := repo.Submit(context.Background(), second); err != adoptions.ErrDuplicateRequest {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}

	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(list))
	}
}

func TestAdoptionsRepo_Update_ChangesAnimalOnlyWhenAsked(t *testing.T) {
	animalsRepo := NewAnimalsRepo()
	repo := NewAdoptionsRepo(animalsRepo, NewUsersRepo())
	seedAnimal(t, animalsRepo, "animal-1", animals.StatusAvailable)

	adoption := adoptions.Adoption{
		ID:       "adoption-1",
		UserID:   "user-1",
		AnimalID: "animal-1",
		Status:   adoptions.StatusPending,
	}
	if err := repo.Submit(context.Background(), adoption); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	// Rechazo: status vacío => el animal queda como estaba.
	adoption.Status = adoptions.StatusRejected
	if err := repo.Update(context.Background(), adoption, ""); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	a, _ := animalsRepo.GetByID(context.Background(), "animal-1")
	if a.Status != animals.StatusPendingAdoption {
		t.Fatalf("expected animal untouched on reject, got %s", a.Status)
	}

	// Aprobación: pasa a adopted.
	adoption.Status = adoptions.StatusApproved
	if err := repo.Update(context.Background(), adoption, animals.StatusAdopted); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	a, _ = animalsRepo.GetByID(context.Background(), "animal-1")
	if a.Status != animals.StatusAdopted {
		t.Fatalf("expected adopted, got %s", a.Status)
	}
}
