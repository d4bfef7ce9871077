package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/service/directory"
)

// Ensure, that directoryServiceMock does implement directoryService.
var _ directoryService = &directoryServiceMock{}

type directoryServiceMock struct {
	AddNoteFunc        func(ctx context.Context, identity domain.Identity, input directory.AddNoteInput) (domain.Client, error)
	BulkDeleteFunc     func(ctx context.Context, identity domain.Identity, input directory.BulkDeleteInput) (*directory.BulkResult, error)
	BulkUpdateFunc     func(ctx context.Context, identity domain.Identity, input directory.BulkUpdateInput) (*directory.BulkResult, error)
	CreateClientFunc   func(ctx context.Context, identity domain.Identity, input directory.CreateClientInput) (domain.Client, error)
	DeleteClientFunc   func(ctx context.Context, identity domain.Identity, id uuid.UUID) error
	DeleteExportFunc   func(ctx context.Context, identity domain.Identity, key string) error
	DownloadExportFunc func(ctx context.Context, identity domain.Identity, key string) (io.ReadCloser, error)
	ExportClientsFunc  func(ctx context.Context, identity domain.Identity, input directory.ExportInput) (*directory.ExportResult, error)
	GetClientFunc      func(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Client, error)
	ImportClientsFunc  func(ctx context.Context, identity domain.Identity, r io.Reader) (*directory.ImportResult, error)
	ListClientsFunc    func(ctx context.Context, identity domain.Identity, input directory.ListInput) (*domain.Page, error)
	StatusSummaryFunc  func(ctx context.Context, identity domain.Identity) ([]domain.StatusCount, error)
	UpdateClientFunc   func(ctx context.Context, identity domain.Identity, input directory.UpdateClientInput) (domain.Client, error)

	calls struct {
		AddNote []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.AddNoteInput
		}
		BulkDelete []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.BulkDeleteInput
		}
		BulkUpdate []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.BulkUpdateInput
		}
		CreateClient []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.CreateClientInput
		}
		DeleteClient []struct {
			Ctx      context.Context
			Identity domain.Identity
			ID       uuid.UUID
		}
		DeleteExport []struct {
			Ctx      context.Context
			Identity domain.Identity
			Key      string
		}
		DownloadExport []struct {
			Ctx      context.Context
			Identity domain.Identity
			Key      string
		}
		ExportClients []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.ExportInput
		}
		GetClient []struct {
			Ctx      context.Context
			Identity domain.Identity
			ID       uuid.UUID
		}
		ImportClients []struct {
			Ctx      context.Context
			Identity domain.Identity
			R        io.Reader
		}
		ListClients []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.ListInput
		}
		StatusSummary []struct {
			Ctx      context.Context
			Identity domain.Identity
		}
		UpdateClient []struct {
			Ctx      context.Context
			Identity domain.Identity
			Input    directory.UpdateClientInput
		}
	}
	lockAddNote        sync.RWMutex
	lockBulkDelete     sync.RWMutex
	lockBulkUpdate     sync.RWMutex
	lockCreateClient   sync.RWMutex
	lockDeleteClient   sync.RWMutex
	lockDeleteExport   sync.RWMutex
	lockDownloadExport sync.RWMutex
	lockExportClients  sync.RWMutex
	lockGetClient      sync.RWMutex
	lockImportClients  sync.RWMutex
	lockListClients    sync.RWMutex
	lockStatusSummary  sync.RWMutex
	lockUpdateClient   sync.RWMutex
}

func (mock *directoryServiceMock) AddNote(ctx context.Context, identity domain.Identity, input directory.AddNoteInput) (domain.Client, error) {
	if mock.AddNoteFunc == nil {
		panic("directoryServiceMock.AddNoteFunc: method is nil but directoryService.AddNote was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.AddNoteInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockAddNote.Lock()
	mock.calls.AddNote = append(mock.calls.AddNote, callInfo)
	mock.lockAddNote.Unlock()
	return mock.AddNoteFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) AddNoteCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.AddNoteInput
} {
	mock.lockAddNote.RLock()
	calls := mock.calls.AddNote
	mock.lockAddNote.RUnlock()
	return calls
}

func (mock *directoryServiceMock) BulkDelete(ctx context.Context, identity domain.Identity, input directory.BulkDeleteInput) (*directory.BulkResult, error) {
	if mock.BulkDeleteFunc == nil {
		panic("directoryServiceMock.BulkDeleteFunc: method is nil but directoryService.BulkDelete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.BulkDeleteInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockBulkDelete.Lock()
	mock.calls.BulkDelete = append(mock.calls.BulkDelete, callInfo)
	mock.lockBulkDelete.Unlock()
	return mock.BulkDeleteFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) BulkDeleteCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.BulkDeleteInput
} {
	mock.lockBulkDelete.RLock()
	calls := mock.calls.BulkDelete
	mock.lockBulkDelete.RUnlock()
	return calls
}

func (mock *directoryServiceMock) BulkUpdate(ctx context.Context, identity domain.Identity, input directory.BulkUpdateInput) (*directory.BulkResult, error) {
	if mock.BulkUpdateFunc == nil {
		panic("directoryServiceMock.BulkUpdateFunc: method is nil but directoryService.BulkUpdate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.BulkUpdateInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockBulkUpdate.Lock()
	mock.calls.BulkUpdate = append(mock.calls.BulkUpdate, callInfo)
	mock.lockBulkUpdate.Unlock()
	return mock.BulkUpdateFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) BulkUpdateCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.BulkUpdateInput
} {
	mock.lockBulkUpdate.RLock()
	calls := mock.calls.BulkUpdate
	mock.lockBulkUpdate.RUnlock()
	return calls
}

func (mock *directoryServiceMock) CreateClient(ctx context.Context, identity domain.Identity, input directory.CreateClientInput) (domain.Client, error) {
	if mock.CreateClientFunc == nil {
		panic("directoryServiceMock.CreateClientFunc: method is nil but directoryService.CreateClient was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.CreateClientInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockCreateClient.Lock()
	mock.calls.CreateClient = append(mock.calls.CreateClient, callInfo)
	mock.lockCreateClient.Unlock()
	return mock.CreateClientFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) CreateClientCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.CreateClientInput
} {
	mock.lockCreateClient.RLock()
	calls := mock.calls.CreateClient
	mock.lockCreateClient.RUnlock()
	return calls
}

func (mock *directoryServiceMock) DeleteClient(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if mock.DeleteClientFunc == nil {
		panic("directoryServiceMock.DeleteClientFunc: method is nil but directoryService.DeleteClient was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		ID       uuid.UUID
	}{
		Ctx:      ctx,
		Identity: identity,
		ID:       id,
	}
	mock.lockDeleteClient.Lock()
	mock.calls.DeleteClient = append(mock.calls.DeleteClient, callInfo)
	mock.lockDeleteClient.Unlock()
	return mock.DeleteClientFunc(ctx, identity, id)
}

func (mock *directoryServiceMock) DeleteClientCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	ID       uuid.UUID
} {
	mock.lockDeleteClient.RLock()
	calls := mock.calls.DeleteClient
	mock.lockDeleteClient.RUnlock()
	return calls
}

func (mock *directoryServiceMock) DeleteExport(ctx context.Context, identity domain.Identity, key string) error {
	if mock.DeleteExportFunc == nil {
		panic("directoryServiceMock.DeleteExportFunc: method is nil but directoryService.DeleteExport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Key      string
	}{
		Ctx:      ctx,
		Identity: identity,
		Key:      key,
	}
	mock.lockDeleteExport.Lock()
	mock.calls.DeleteExport = append(mock.calls.DeleteExport, callInfo)
	mock.lockDeleteExport.Unlock()
	return mock.DeleteExportFunc(ctx, identity, key)
}

func (mock *directoryServiceMock) DeleteExportCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Key      string
} {
	mock.lockDeleteExport.RLock()
	calls := mock.calls.DeleteExport
	mock.lockDeleteExport.RUnlock()
	return calls
}

func (mock *directoryServiceMock) DownloadExport(ctx context.Context, identity domain.Identity, key string) (io.ReadCloser, error) {
	if mock.DownloadExportFunc == nil {
		panic("directoryServiceMock.DownloadExportFunc: method is nil but directoryService.DownloadExport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Key      string
	}{
		Ctx:      ctx,
		Identity: identity,
		Key:      key,
	}
	mock.lockDownloadExport.Lock()
	mock.calls.DownloadExport = append(mock.calls.DownloadExport, callInfo)
	mock.lockDownloadExport.Unlock()
	return mock.DownloadExportFunc(ctx, identity, key)
}

func (mock *directoryServiceMock) DownloadExportCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Key      string
} {
	mock.lockDownloadExport.RLock()
	calls := mock.calls.DownloadExport
	mock.lockDownloadExport.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ExportClients(ctx context.Context, identity domain.Identity, input directory.ExportInput) (*directory.ExportResult, error) {
	if mock.ExportClientsFunc == nil {
		panic("directoryServiceMock.ExportClientsFunc: method is nil but directoryService.ExportClients was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.ExportInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockExportClients.Lock()
	mock.calls.ExportClients = append(mock.calls.ExportClients, callInfo)
	mock.lockExportClients.Unlock()
	return mock.ExportClientsFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) ExportClientsCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.ExportInput
} {
	mock.lockExportClients.RLock()
	calls := mock.calls.ExportClients
	mock.lockExportClients.RUnlock()
	return calls
}

func (mock *directoryServiceMock) GetClient(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Client, error) {
	if mock.GetClientFunc == nil {
		panic("directoryServiceMock.GetClientFunc: method is nil but directoryService.GetClient was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		ID       uuid.UUID
	}{
		Ctx:      ctx,
		Identity: identity,
		ID:       id,
	}
	mock.lockGetClient.Lock()
	mock.calls.GetClient = append(mock.calls.GetClient, callInfo)
	mock.lockGetClient.Unlock()
	return mock.GetClientFunc(ctx, identity, id)
}

func (mock *directoryServiceMock) GetClientCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	ID       uuid.UUID
} {
	mock.lockGetClient.RLock()
	calls := mock.calls.GetClient
	mock.lockGetClient.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ImportClients(ctx context.Context, identity domain.Identity, r io.Reader) (*directory.ImportResult, error) {
	if mock.ImportClientsFunc == nil {
		panic("directoryServiceMock.ImportClientsFunc: method is nil but directoryService.ImportClients was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		R        io.Reader
	}{
		Ctx:      ctx,
		Identity: identity,
		R:        r,
	}
	mock.lockImportClients.Lock()
	mock.calls.ImportClients = append(mock.calls.ImportClients, callInfo)
	mock.lockImportClients.Unlock()
	return mock.ImportClientsFunc(ctx, identity, r)
}

func (mock *directoryServiceMock) ImportClientsCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	R        io.Reader
} {
	mock.lockImportClients.RLock()
	calls := mock.calls.ImportClients
	mock.lockImportClients.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ListClients(ctx context.Context, identity domain.Identity, input directory.ListInput) (*domain.Page, error) {
	if mock.ListClientsFunc == nil {
		panic("directoryServiceMock.ListClientsFunc: method is nil but directoryService.ListClients was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.ListInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockListClients.Lock()
	mock.calls.ListClients = append(mock.calls.ListClients, callInfo)
	mock.lockListClients.Unlock()
	return mock.ListClientsFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) ListClientsCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.ListInput
} {
	mock.lockListClients.RLock()
	calls := mock.calls.ListClients
	mock.lockListClients.RUnlock()
	return calls
}

func (mock *directoryServiceMock) StatusSummary(ctx context.Context, identity domain.Identity) ([]domain.StatusCount, error) {
	if mock.StatusSummaryFunc == nil {
		panic("directoryServiceMock.StatusSummaryFunc: method is nil but directoryService.StatusSummary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
	}{
		Ctx:      ctx,
		Identity: identity,
	}
	mock.lockStatusSummary.Lock()
	mock.calls.StatusSummary = append(mock.calls.StatusSummary, callInfo)
	mock.lockStatusSummary.Unlock()
	return mock.StatusSummaryFunc(ctx, identity)
}

func (mock *directoryServiceMock) StatusSummaryCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
} {
	mock.lockStatusSummary.RLock()
	calls := mock.calls.StatusSummary
	mock.lockStatusSummary.RUnlock()
	return calls
}

func (mock *directoryServiceMock) UpdateClient(ctx context.Context, identity domain.Identity, input directory.UpdateClientInput) (domain.Client, error) {
	if mock.UpdateClientFunc == nil {
		panic("directoryServiceMock.UpdateClientFunc: method is nil but directoryService.UpdateClient was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Input    directory.UpdateClientInput
	}{
		Ctx:      ctx,
		Identity: identity,
		Input:    input,
	}
	mock.lockUpdateClient.Lock()
	mock.calls.UpdateClient = append(mock.calls.UpdateClient, callInfo)
	mock.lockUpdateClient.Unlock()
	return mock.UpdateClientFunc(ctx, identity, input)
}

func (mock *directoryServiceMock) UpdateClientCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Input    directory.UpdateClientInput
} {
	mock.lockUpdateClient.RLock()
	calls := mock.calls.UpdateClient
	mock.lockUpdateClient.RUnlock()
	return calls
}
