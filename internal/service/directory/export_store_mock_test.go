package directory

import (
	"context"
	"io"
	"sync"
)

// Ensure, that exportStoreMock does implement exportStore.
var _ exportStore = &exportStoreMock{}

type exportStoreMock struct {
	DeleteFunc   func(ctx context.Context, key string) error
	DownloadFunc func(ctx context.Context, key string) (io.ReadCloser, error)
	UploadFunc   func(ctx context.Context, key string, contentType string, data io.Reader) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			Key string
		}
		Download []struct {
			Ctx context.Context
			Key string
		}
		Upload []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Data        io.Reader
		}
	}
	lockDelete   sync.RWMutex
	lockDownload sync.RWMutex
	lockUpload   sync.RWMutex
}

func (mock *exportStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("exportStoreMock.DeleteFunc: method is nil but exportStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *exportStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *exportStoreMock) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if mock.DownloadFunc == nil {
		panic("exportStoreMock.DownloadFunc: method is nil but exportStore.Download was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDownload.Lock()
	mock.calls.Download = append(mock.calls.Download, callInfo)
	mock.lockDownload.Unlock()
	return mock.DownloadFunc(ctx, key)
}

func (mock *exportStoreMock) DownloadCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDownload.RLock()
	calls := mock.calls.Download
	mock.lockDownload.RUnlock()
	return calls
}

func (mock *exportStoreMock) Upload(ctx context.Context, key string, contentType string, data io.Reader) error {
	if mock.UploadFunc == nil {
		panic("exportStoreMock.UploadFunc: method is nil but exportStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Data        io.Reader
	}{
		Ctx:         ctx,
		Key:         key,
		ContentType: contentType,
		Data:        data,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, key, contentType, data)
}

func (mock *exportStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Data        io.Reader
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
