package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Ensure, that clientRepoMock does implement clientRepo.
var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	AppendNotesFunc   func(ctx context.Context, agencyID uuid.UUID, id uuid.UUID, notes []string) error
	ApplyPatchFunc    func(ctx context.Context, agencyID uuid.UUID, id uuid.UUID, patch domain.ClientPatch) error
	CountByStatusFunc func(ctx context.Context, agencyID uuid.UUID) ([]domain.StatusCount, error)
	CreateFunc        func(ctx context.Context, c domain.Client) (domain.Client, error)
	CreateBatchFunc   func(ctx context.Context, clients []domain.Client) (int, error)
	DeleteFunc        func(ctx context.Context, agencyID uuid.UUID, id uuid.UUID) error
	FindPageFunc      func(ctx context.Context, agencyID uuid.UUID, criteria domain.SearchCriteria, cursor *domain.Cursor, limit int) ([]domain.Client, error)
	GetByIDFunc       func(ctx context.Context, agencyID uuid.UUID, id uuid.UUID) (domain.Client, error)
	GetByIDsFunc      func(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]domain.Client, error)
	UpdateFunc        func(ctx context.Context, c domain.Client) (domain.Client, error)

	calls struct {
		AppendNotes []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			ID       uuid.UUID
			Notes    []string
		}
		ApplyPatch []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			ID       uuid.UUID
			Patch    domain.ClientPatch
		}
		CountByStatus []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   domain.Client
		}
		CreateBatch []struct {
			Ctx     context.Context
			Clients []domain.Client
		}
		Delete []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			ID       uuid.UUID
		}
		FindPage []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			Criteria domain.SearchCriteria
			Cursor   *domain.Cursor
			Limit    int
		}
		GetByID []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			ID       uuid.UUID
		}
		GetByIDs []struct {
			Ctx      context.Context
			AgencyID uuid.UUID
			IDs      []uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			C   domain.Client
		}
	}
	lockAppendNotes   sync.RWMutex
	lockApplyPatch    sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockCreate        sync.RWMutex
	lockCreateBatch   sync.RWMutex
	lockDelete        sync.RWMutex
	lockFindPage      sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByIDs      sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *clientRepoMock) AppendNotes(ctx context.Context, agencyID uuid.UUID, id uuid.UUID, notes []string) error {
	if mock.AppendNotesFunc == nil {
		panic("clientRepoMock.AppendNotesFunc: method is nil but clientRepo.AppendNotes was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		ID       uuid.UUID
		Notes    []string
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		ID:       id,
		Notes:    notes,
	}
	mock.lockAppendNotes.Lock()
	mock.calls.AppendNotes = append(mock.calls.AppendNotes, callInfo)
	mock.lockAppendNotes.Unlock()
	return mock.AppendNotesFunc(ctx, agencyID, id, notes)
}

func (mock *clientRepoMock) AppendNotesCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	ID       uuid.UUID
	Notes    []string
} {
	mock.lockAppendNotes.RLock()
	calls := mock.calls.AppendNotes
	mock.lockAppendNotes.RUnlock()
	return calls
}

func (mock *clientRepoMock) ApplyPatch(ctx context.Context, agencyID uuid.UUID, id uuid.UUID, patch domain.ClientPatch) error {
	if mock.ApplyPatchFunc == nil {
		panic("clientRepoMock.ApplyPatchFunc: method is nil but clientRepo.ApplyPatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		ID       uuid.UUID
		Patch    domain.ClientPatch
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		ID:       id,
		Patch:    patch,
	}
	mock.lockApplyPatch.Lock()
	mock.calls.ApplyPatch = append(mock.calls.ApplyPatch, callInfo)
	mock.lockApplyPatch.Unlock()
	return mock.ApplyPatchFunc(ctx, agencyID, id, patch)
}

func (mock *clientRepoMock) ApplyPatchCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	ID       uuid.UUID
	Patch    domain.ClientPatch
} {
	mock.lockApplyPatch.RLock()
	calls := mock.calls.ApplyPatch
	mock.lockApplyPatch.RUnlock()
	return calls
}

func (mock *clientRepoMock) CountByStatus(ctx context.Context, agencyID uuid.UUID) ([]domain.StatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("clientRepoMock.CountByStatusFunc: method is nil but clientRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, agencyID)
}

func (mock *clientRepoMock) CountByStatusCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *clientRepoMock) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Client
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Client
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) CreateBatch(ctx context.Context, clients []domain.Client) (int, error) {
	if mock.CreateBatchFunc == nil {
		panic("clientRepoMock.CreateBatchFunc: method is nil but clientRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Clients []domain.Client
	}{
		Ctx:     ctx,
		Clients: clients,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, clients)
}

func (mock *clientRepoMock) CreateBatchCalls() []struct {
	Ctx     context.Context
	Clients []domain.Client
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *clientRepoMock) Delete(ctx context.Context, agencyID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("clientRepoMock.DeleteFunc: method is nil but clientRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		ID       uuid.UUID
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		ID:       id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, agencyID, id)
}

func (mock *clientRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *clientRepoMock) FindPage(ctx context.Context, agencyID uuid.UUID, criteria domain.SearchCriteria, cursor *domain.Cursor, limit int) ([]domain.Client, error) {
	if mock.FindPageFunc == nil {
		panic("clientRepoMock.FindPageFunc: method is nil but clientRepo.FindPage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		Criteria domain.SearchCriteria
		Cursor   *domain.Cursor
		Limit    int
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		Criteria: criteria,
		Cursor:   cursor,
		Limit:    limit,
	}
	mock.lockFindPage.Lock()
	mock.calls.FindPage = append(mock.calls.FindPage, callInfo)
	mock.lockFindPage.Unlock()
	return mock.FindPageFunc(ctx, agencyID, criteria, cursor, limit)
}

func (mock *clientRepoMock) FindPageCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	Criteria domain.SearchCriteria
	Cursor   *domain.Cursor
	Limit    int
} {
	mock.lockFindPage.RLock()
	calls := mock.calls.FindPage
	mock.lockFindPage.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByID(ctx context.Context, agencyID uuid.UUID, id uuid.UUID) (domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		ID       uuid.UUID
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		ID:       id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, agencyID, id)
}

func (mock *clientRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]domain.Client, error) {
	if mock.GetByIDsFunc == nil {
		panic("clientRepoMock.GetByIDsFunc: method is nil but clientRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgencyID uuid.UUID
		IDs      []uuid.UUID
	}{
		Ctx:      ctx,
		AgencyID: agencyID,
		IDs:      ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, agencyID, ids)
}

func (mock *clientRepoMock) GetByIDsCalls() []struct {
	Ctx      context.Context
	AgencyID uuid.UUID
	IDs      []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *clientRepoMock) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Client
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *clientRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   domain.Client
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
