package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
	"doc_ingest/internal/service/mocks"
)

const testFolder = "folder-1"

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source  *mocks.MockSourceRepository
	objects *mocks.MockObjectStore
	logs    *mocks.MockProcessingLogStore

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSourceRepository(s.ctrl)
	s.objects = mocks.NewMockObjectStore(s.ctrl)
	s.logs = mocks.NewMockProcessingLogStore(s.ctrl)

	s.cfg = config.SyncConfig{
		BatchSize: 2,
		TempDir:   s.T().TempDir(),
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
		},
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(s.source, s.objects, s.logs, s.logger, s.cfg, map[domain.Category]config.CategoryConfig{
		domain.CategorySalesInvoice:    {Bucket: "sales", SourceFolderID: "f-sales"},
		domain.CategoryPurchaseInvoice: {Bucket: "purchases", SourceFolderID: "f-purchases"},
		domain.CategoryContract:        {Bucket: "contracts"},
	})
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func writeContent(content string) func(context.Context, domain.SourceFile, io.Writer) error {
	return func(_ context.Context, _ domain.SourceFile, w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	}
}

func (s *SyncServiceTestSuite) assertTempDirEmpty() {
	entries, err := os.ReadDir(s.cfg.TempDir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *SyncServiceTestSuite) TestSyncFolder_UploadsNewFiles() {
	ctx := context.Background()
	files := []domain.SourceFile{
		{ID: "1", Name: "a.pdf"},
		{ID: "2", Name: "b.pdf"},
		{ID: "3", Name: "c.pdf"},
	}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return([]domain.StorageObject{{Name: "a.pdf"}}, nil)

	s.source.EXPECT().Download(ctx, files[1], gomock.Any()).DoAndReturn(writeContent("bbb"))
	s.source.EXPECT().Download(ctx, files[2], gomock.Any()).DoAndReturn(writeContent("ccc"))

	var mu sync.Mutex
	uploaded := map[string]string{}
	s.objects.EXPECT().Upload(ctx, "sales", gomock.Any(), gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _, path string, r io.Reader, _ bool) error {
			data, err := io.ReadAll(r)
			s.Require().NoError(err)
			mu.Lock()
			uploaded[path] = string(data)
			mu.Unlock()
			return nil
		}).Times(2)

	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, gomock.InAnyOrder([]string{"b.pdf", "c.pdf"})).Return(int64(2), nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal(2, result.Uploaded)
	s.Zero(result.Failed)
	s.Equal(map[string]string{"b.pdf": "bbb", "c.pdf": "ccc"}, uploaded)
	s.assertTempDirEmpty()
}

func (s *SyncServiceTestSuite) TestSyncFolder_SecondRunUploadsNothing() {
	ctx := context.Background()
	files := []domain.SourceFile{{ID: "1", Name: "a.pdf"}, {ID: "2", Name: "Doc", ExportMimeType: "application/pdf"}}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return([]domain.StorageObject{{Name: "a.pdf"}, {Name: "Doc.pdf"}}, nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Zero(result.Total)
	s.Zero(result.Uploaded)
}

func (s *SyncServiceTestSuite) TestSyncFolder_SanitizesAndExportsNames() {
	ctx := context.Background()
	files := []domain.SourceFile{
		{ID: "1", Name: "Faktura č/12.pdf"},
		{ID: "2", Name: "Budget", ExportMimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, gomock.Any(), gomock.Any()).DoAndReturn(writeContent("x")).Times(2)
	s.objects.EXPECT().Upload(ctx, "sales", "Faktura c_12.pdf", gomock.Any(), false).Return(nil)
	s.objects.EXPECT().Upload(ctx, "sales", "Budget.xlsx", gomock.Any(), false).Return(nil)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, gomock.InAnyOrder([]string{"Faktura c_12.pdf", "Budget.xlsx"})).Return(int64(2), nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(2, result.Uploaded)
}

func (s *SyncServiceTestSuite) TestSyncFolder_DuplicateCountsAsSkipped() {
	ctx := context.Background()
	files := []domain.SourceFile{{ID: "1", Name: "a.pdf"}}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, files[0], gomock.Any()).DoAndReturn(writeContent("a"))
	s.objects.EXPECT().Upload(ctx, "sales", "a.pdf", gomock.Any(), false).Return(domain.ErrDuplicateObject)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, []string{"a.pdf"}).Return(int64(0), nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(1, result.Skipped)
	s.Zero(result.Uploaded)
	s.Zero(result.Failed)
	s.Empty(result.FailedFiles)
}

func (s *SyncServiceTestSuite) TestSyncFolder_RetriesDownload() {
	ctx := context.Background()
	files := []domain.SourceFile{{ID: "1", Name: "a.pdf"}}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	gomock.InOrder(
		s.source.EXPECT().Download(ctx, files[0], gomock.Any()).Return(errors.New("timeout")),
		s.source.EXPECT().Download(ctx, files[0], gomock.Any()).DoAndReturn(writeContent("a")),
	)
	s.objects.EXPECT().Upload(ctx, "sales", "a.pdf", gomock.Any(), false).Return(nil)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, []string{"a.pdf"}).Return(int64(1), nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(1, result.Uploaded)
}

func (s *SyncServiceTestSuite) TestSyncFolder_FailureDoesNotAbortBatch() {
	ctx := context.Background()
	files := []domain.SourceFile{
		{ID: "1", Name: "a.pdf"},
		{ID: "2", Name: "b.pdf"},
		{ID: "3", Name: "c.pdf"},
	}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, files[0], gomock.Any()).DoAndReturn(writeContent("a"))
	s.source.EXPECT().Download(ctx, files[1], gomock.Any()).Return(errors.New("forbidden")).Times(3)
	s.source.EXPECT().Exists(ctx, "2").Return(true, nil)
	s.source.EXPECT().Download(ctx, files[2], gomock.Any()).DoAndReturn(writeContent("c"))
	s.objects.EXPECT().Upload(ctx, "sales", "a.pdf", gomock.Any(), false).Return(nil)
	s.objects.EXPECT().Upload(ctx, "sales", "c.pdf", gomock.Any(), false).Return(nil)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, []string{"a.pdf"}).Return(int64(1), nil)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, []string{"c.pdf"}).Return(int64(1), nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Equal(2, result.Uploaded)
	s.Equal(1, result.Failed)
	s.Require().Len(result.FailedFiles, 1)
	s.Equal("b.pdf", result.FailedFiles[0].Name)
	s.Contains(result.FailedFiles[0].Error, "forbidden")
	s.assertTempDirEmpty()
}

func (s *SyncServiceTestSuite) TestSyncFolder_FileRemovedFromSourceIsSkipped() {
	ctx := context.Background()
	files := []domain.SourceFile{{ID: "1", Name: "a.pdf"}}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, files[0], gomock.Any()).Return(errors.New("not found")).Times(3)
	s.source.EXPECT().Exists(ctx, "1").Return(false, nil)

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(1, result.Skipped)
	s.Zero(result.Failed)
	s.Zero(result.Uploaded)
	s.assertTempDirEmpty()
}

func (s *SyncServiceTestSuite) TestSyncFolder_BatchesRunInParallelUpToBatchSize() {
	ctx := context.Background()
	files := []domain.SourceFile{
		{ID: "1", Name: "a.pdf"},
		{ID: "2", Name: "b.pdf"},
		{ID: "3", Name: "c.pdf"},
		{ID: "4", Name: "d.pdf"},
		{ID: "5", Name: "e.pdf"},
	}

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)
	release := make(chan struct{})
	started := make(chan struct{}, len(files))

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SourceFile, w io.Writer) error {
			mu.Lock()
			inFlight++
			peak = max(peak, inFlight)
			mu.Unlock()

			started <- struct{}{}
			<-release

			mu.Lock()
			inFlight--
			mu.Unlock()
			_, err := io.WriteString(w, "x")
			return err
		}).Times(len(files))
	s.objects.EXPECT().Upload(ctx, "sales", gomock.Any(), gomock.Any(), false).Return(nil).Times(len(files))
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, gomock.Any()).Return(int64(2), nil).Times(3)

	go func() {
		// Each batch must be fully in flight before it is released.
		for _, size := range []int{2, 2, 1} {
			for range size {
				<-started
			}
			time.Sleep(10 * time.Millisecond)
			for range size {
				release <- struct{}{}
			}
		}
	}()

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(5, result.Uploaded)
	s.Equal(s.cfg.BatchSize, peak)
}

func (s *SyncServiceTestSuite) TestSyncFolder_RegisterFailureStillCountsUpload() {
	ctx := context.Background()
	files := []domain.SourceFile{{ID: "1", Name: "a.pdf"}}

	s.source.EXPECT().List(ctx, testFolder).Return(files, nil)
	s.objects.EXPECT().List(ctx, "sales").Return(nil, nil)
	s.source.EXPECT().Download(ctx, files[0], gomock.Any()).DoAndReturn(writeContent("a"))
	s.objects.EXPECT().Upload(ctx, "sales", "a.pdf", gomock.Any(), false).Return(nil)
	s.logs.EXPECT().Register(ctx, domain.CategorySalesInvoice, []string{"a.pdf"}).Return(int64(0), errors.New("db down"))

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Require().NoError(err)
	s.Equal(1, result.Uploaded)
}

func (s *SyncServiceTestSuite) TestSyncFolder_SourceError() {
	ctx := context.Background()
	s.source.EXPECT().List(ctx, testFolder).Return(nil, errors.New("api error"))

	result, err := s.service.SyncFolder(ctx, domain.CategorySalesInvoice, testFolder, "sales")

	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "list source folder")
}

func (s *SyncServiceTestSuite) TestSyncAll_ContinuesAfterCategoryFailure() {
	ctx := context.Background()

	s.source.EXPECT().List(ctx, "f-sales").Return(nil, errors.New("api error"))
	s.source.EXPECT().List(ctx, "f-purchases").Return(nil, nil)
	s.objects.EXPECT().List(ctx, "purchases").Return(nil, nil)

	results, err := s.service.SyncAll(ctx)

	s.Error(err)
	s.Contains(err.Error(), "sync sales_invoice")
	s.Require().Len(results, 1)
	s.Equal(domain.CategoryPurchaseInvoice, results[0].Category)
}
