package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/application"
	"github.com/heartmarshall/artcontest/internal/service/auth"
	"github.com/heartmarshall/artcontest/internal/service/contest"
	"github.com/heartmarshall/artcontest/internal/service/payment"
	"github.com/heartmarshall/artcontest/internal/service/result"
	"github.com/heartmarshall/artcontest/internal/service/review"
	"github.com/heartmarshall/artcontest/internal/service/upload"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginWithPasswordFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		LoginWithPassword []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockLoginWithPassword sync.RWMutex
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

var _ contestService = &contestServiceMock{}

type contestServiceMock struct {
	ListContestsFunc  func(ctx context.Context, category *domain.Category) ([]domain.Contest, error)
	CreateContestFunc func(ctx context.Context, input contest.ContestInput) (*domain.Contest, error)
	UpdateContestFunc func(ctx context.Context, id int64, input contest.ContestInput) (*domain.Contest, error)
	DeleteContestFunc func(ctx context.Context, id int64) error

	calls struct {
		ListContests []struct {
			Ctx      context.Context
			Category *domain.Category
		}
		CreateContest []struct {
			Ctx   context.Context
			Input contest.ContestInput
		}
		UpdateContest []struct {
			Ctx   context.Context
			ID    int64
			Input contest.ContestInput
		}
		DeleteContest []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListContests  sync.RWMutex
	lockCreateContest sync.RWMutex
	lockUpdateContest sync.RWMutex
	lockDeleteContest sync.RWMutex
}

func (mock *contestServiceMock) ListContests(ctx context.Context, category *domain.Category) ([]domain.Contest, error) {
	if mock.ListContestsFunc == nil {
		panic("contestServiceMock.ListContestsFunc: method is nil but contestService.ListContests was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.Category
	}{Ctx: ctx, Category: category}
	mock.lockListContests.Lock()
	mock.calls.ListContests = append(mock.calls.ListContests, callInfo)
	mock.lockListContests.Unlock()
	return mock.ListContestsFunc(ctx, category)
}

func (mock *contestServiceMock) ListContestsCalls() []struct {
	Ctx      context.Context
	Category *domain.Category
} {
	mock.lockListContests.RLock()
	calls := mock.calls.ListContests
	mock.lockListContests.RUnlock()
	return calls
}

func (mock *contestServiceMock) CreateContest(ctx context.Context, input contest.ContestInput) (*domain.Contest, error) {
	if mock.CreateContestFunc == nil {
		panic("contestServiceMock.CreateContestFunc: method is nil but contestService.CreateContest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contest.ContestInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateContest.Lock()
	mock.calls.CreateContest = append(mock.calls.CreateContest, callInfo)
	mock.lockCreateContest.Unlock()
	return mock.CreateContestFunc(ctx, input)
}

func (mock *contestServiceMock) CreateContestCalls() []struct {
	Ctx   context.Context
	Input contest.ContestInput
} {
	mock.lockCreateContest.RLock()
	calls := mock.calls.CreateContest
	mock.lockCreateContest.RUnlock()
	return calls
}

func (mock *contestServiceMock) UpdateContest(ctx context.Context, id int64, input contest.ContestInput) (*domain.Contest, error) {
	if mock.UpdateContestFunc == nil {
		panic("contestServiceMock.UpdateContestFunc: method is nil but contestService.UpdateContest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input contest.ContestInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateContest.Lock()
	mock.calls.UpdateContest = append(mock.calls.UpdateContest, callInfo)
	mock.lockUpdateContest.Unlock()
	return mock.UpdateContestFunc(ctx, id, input)
}

func (mock *contestServiceMock) UpdateContestCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input contest.ContestInput
} {
	mock.lockUpdateContest.RLock()
	calls := mock.calls.UpdateContest
	mock.lockUpdateContest.RUnlock()
	return calls
}

func (mock *contestServiceMock) DeleteContest(ctx context.Context, id int64) error {
	if mock.DeleteContestFunc == nil {
		panic("contestServiceMock.DeleteContestFunc: method is nil but contestService.DeleteContest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteContest.Lock()
	mock.calls.DeleteContest = append(mock.calls.DeleteContest, callInfo)
	mock.lockDeleteContest.Unlock()
	return mock.DeleteContestFunc(ctx, id)
}

func (mock *contestServiceMock) DeleteContestCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteContest.RLock()
	calls := mock.calls.DeleteContest
	mock.lockDeleteContest.RUnlock()
	return calls
}

var _ applicationService = &applicationServiceMock{}

type applicationServiceMock struct {
	ListApplicationsFunc      func(ctx context.Context, trashed bool) ([]domain.Application, error)
	SubmitFunc                func(ctx context.Context, input application.SubmitInput) (*domain.Application, error)
	UpdateApplicationFunc     func(ctx context.Context, input application.UpdateInput) (*domain.Application, error)
	SoftDeleteApplicationFunc func(ctx context.Context, id int64) error
	RestoreApplicationFunc    func(ctx context.Context, id int64) error

	calls struct {
		ListApplications []struct {
			Ctx     context.Context
			Trashed bool
		}
		Submit []struct {
			Ctx   context.Context
			Input application.SubmitInput
		}
		UpdateApplication []struct {
			Ctx   context.Context
			Input application.UpdateInput
		}
		SoftDeleteApplication []struct {
			Ctx context.Context
			ID  int64
		}
		RestoreApplication []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListApplications      sync.RWMutex
	lockSubmit                sync.RWMutex
	lockUpdateApplication     sync.RWMutex
	lockSoftDeleteApplication sync.RWMutex
	lockRestoreApplication    sync.RWMutex
}

func (mock *applicationServiceMock) ListApplications(ctx context.Context, trashed bool) ([]domain.Application, error) {
	if mock.ListApplicationsFunc == nil {
		panic("applicationServiceMock.ListApplicationsFunc: method is nil but applicationService.ListApplications was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Trashed bool
	}{Ctx: ctx, Trashed: trashed}
	mock.lockListApplications.Lock()
	mock.calls.ListApplications = append(mock.calls.ListApplications, callInfo)
	mock.lockListApplications.Unlock()
	return mock.ListApplicationsFunc(ctx, trashed)
}

func (mock *applicationServiceMock) ListApplicationsCalls() []struct {
	Ctx     context.Context
	Trashed bool
} {
	mock.lockListApplications.RLock()
	calls := mock.calls.ListApplications
	mock.lockListApplications.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error) {
	if mock.SubmitFunc == nil {
		panic("applicationServiceMock.SubmitFunc: method is nil but applicationService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *applicationServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input application.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *applicationServiceMock) UpdateApplication(ctx context.Context, input application.UpdateInput) (*domain.Application, error) {
	if mock.UpdateApplicationFunc == nil {
		panic("applicationServiceMock.UpdateApplicationFunc: method is nil but applicationService.UpdateApplication was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateApplication.Lock()
	mock.calls.UpdateApplication = append(mock.calls.UpdateApplication, callInfo)
	mock.lockUpdateApplication.Unlock()
	return mock.UpdateApplicationFunc(ctx, input)
}

func (mock *applicationServiceMock) UpdateApplicationCalls() []struct {
	Ctx   context.Context
	Input application.UpdateInput
} {
	mock.lockUpdateApplication.RLock()
	calls := mock.calls.UpdateApplication
	mock.lockUpdateApplication.RUnlock()
	return calls
}

func (mock *applicationServiceMock) SoftDeleteApplication(ctx context.Context, id int64) error {
	if mock.SoftDeleteApplicationFunc == nil {
		panic("applicationServiceMock.SoftDeleteApplicationFunc: method is nil but applicationService.SoftDeleteApplication was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockSoftDeleteApplication.Lock()
	mock.calls.SoftDeleteApplication = append(mock.calls.SoftDeleteApplication, callInfo)
	mock.lockSoftDeleteApplication.Unlock()
	return mock.SoftDeleteApplicationFunc(ctx, id)
}

func (mock *applicationServiceMock) SoftDeleteApplicationCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockSoftDeleteApplication.RLock()
	calls := mock.calls.SoftDeleteApplication
	mock.lockSoftDeleteApplication.RUnlock()
	return calls
}

func (mock *applicationServiceMock) RestoreApplication(ctx context.Context, id int64) error {
	if mock.RestoreApplicationFunc == nil {
		panic("applicationServiceMock.RestoreApplicationFunc: method is nil but applicationService.RestoreApplication was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockRestoreApplication.Lock()
	mock.calls.RestoreApplication = append(mock.calls.RestoreApplication, callInfo)
	mock.lockRestoreApplication.Unlock()
	return mock.RestoreApplicationFunc(ctx, id)
}

func (mock *applicationServiceMock) RestoreApplicationCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockRestoreApplication.RLock()
	calls := mock.calls.RestoreApplication
	mock.lockRestoreApplication.RUnlock()
	return calls
}

var _ resultService = &resultServiceMock{}

type resultServiceMock struct {
	ListResultsFunc   func(ctx context.Context, params domain.ResultListParams) ([]domain.Result, error)
	GetResultFunc     func(ctx context.Context, id int64) (*domain.Result, error)
	CreateResultFunc  func(ctx context.Context, input result.ResultInput) (*domain.Result, error)
	UpdateResultFunc  func(ctx context.Context, id int64, input result.ResultInput) (*domain.Result, error)
	DeleteResultFunc  func(ctx context.Context, id int64) error
	PublicResultsFunc func(ctx context.Context) ([]domain.PublicResult, error)
	GalleryWorksFunc  func(ctx context.Context) ([]domain.GalleryWork, error)

	calls struct {
		ListResults []struct {
			Ctx    context.Context
			Params domain.ResultListParams
		}
		GetResult []struct {
			Ctx context.Context
			ID  int64
		}
		CreateResult []struct {
			Ctx   context.Context
			Input result.ResultInput
		}
		UpdateResult []struct {
			Ctx   context.Context
			ID    int64
			Input result.ResultInput
		}
		DeleteResult []struct {
			Ctx context.Context
			ID  int64
		}
		PublicResults []struct {
			Ctx context.Context
		}
		GalleryWorks []struct {
			Ctx context.Context
		}
	}
	lockListResults   sync.RWMutex
	lockGetResult     sync.RWMutex
	lockCreateResult  sync.RWMutex
	lockUpdateResult  sync.RWMutex
	lockDeleteResult  sync.RWMutex
	lockPublicResults sync.RWMutex
	lockGalleryWorks  sync.RWMutex
}

func (mock *resultServiceMock) ListResults(ctx context.Context, params domain.ResultListParams) ([]domain.Result, error) {
	if mock.ListResultsFunc == nil {
		panic("resultServiceMock.ListResultsFunc: method is nil but resultService.ListResults was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Params domain.ResultListParams
	}{Ctx: ctx, Params: params}
	mock.lockListResults.Lock()
	mock.calls.ListResults = append(mock.calls.ListResults, callInfo)
	mock.lockListResults.Unlock()
	return mock.ListResultsFunc(ctx, params)
}

func (mock *resultServiceMock) ListResultsCalls() []struct {
	Ctx    context.Context
	Params domain.ResultListParams
} {
	mock.lockListResults.RLock()
	calls := mock.calls.ListResults
	mock.lockListResults.RUnlock()
	return calls
}

func (mock *resultServiceMock) GetResult(ctx context.Context, id int64) (*domain.Result, error) {
	if mock.GetResultFunc == nil {
		panic("resultServiceMock.GetResultFunc: method is nil but resultService.GetResult was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetResult.Lock()
	mock.calls.GetResult = append(mock.calls.GetResult, callInfo)
	mock.lockGetResult.Unlock()
	return mock.GetResultFunc(ctx, id)
}

func (mock *resultServiceMock) GetResultCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetResult.RLock()
	calls := mock.calls.GetResult
	mock.lockGetResult.RUnlock()
	return calls
}

func (mock *resultServiceMock) CreateResult(ctx context.Context, input result.ResultInput) (*domain.Result, error) {
	if mock.CreateResultFunc == nil {
		panic("resultServiceMock.CreateResultFunc: method is nil but resultService.CreateResult was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input result.ResultInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateResult.Lock()
	mock.calls.CreateResult = append(mock.calls.CreateResult, callInfo)
	mock.lockCreateResult.Unlock()
	return mock.CreateResultFunc(ctx, input)
}

func (mock *resultServiceMock) CreateResultCalls() []struct {
	Ctx   context.Context
	Input result.ResultInput
} {
	mock.lockCreateResult.RLock()
	calls := mock.calls.CreateResult
	mock.lockCreateResult.RUnlock()
	return calls
}

func (mock *resultServiceMock) UpdateResult(ctx context.Context, id int64, input result.ResultInput) (*domain.Result, error) {
	if mock.UpdateResultFunc == nil {
		panic("resultServiceMock.UpdateResultFunc: method is nil but resultService.UpdateResult was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input result.ResultInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateResult.Lock()
	mock.calls.UpdateResult = append(mock.calls.UpdateResult, callInfo)
	mock.lockUpdateResult.Unlock()
	return mock.UpdateResultFunc(ctx, id, input)
}

func (mock *resultServiceMock) UpdateResultCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input result.ResultInput
} {
	mock.lockUpdateResult.RLock()
	calls := mock.calls.UpdateResult
	mock.lockUpdateResult.RUnlock()
	return calls
}

func (mock *resultServiceMock) DeleteResult(ctx context.Context, id int64) error {
	if mock.DeleteResultFunc == nil {
		panic("resultServiceMock.DeleteResultFunc: method is nil but resultService.DeleteResult was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteResult.Lock()
	mock.calls.DeleteResult = append(mock.calls.DeleteResult, callInfo)
	mock.lockDeleteResult.Unlock()
	return mock.DeleteResultFunc(ctx, id)
}

func (mock *resultServiceMock) DeleteResultCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteResult.RLock()
	calls := mock.calls.DeleteResult
	mock.lockDeleteResult.RUnlock()
	return calls
}

func (mock *resultServiceMock) PublicResults(ctx context.Context) ([]domain.PublicResult, error) {
	if mock.PublicResultsFunc == nil {
		panic("resultServiceMock.PublicResultsFunc: method is nil but resultService.PublicResults was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPublicResults.Lock()
	mock.calls.PublicResults = append(mock.calls.PublicResults, callInfo)
	mock.lockPublicResults.Unlock()
	return mock.PublicResultsFunc(ctx)
}

func (mock *resultServiceMock) PublicResultsCalls() []struct {
	Ctx context.Context
} {
	mock.lockPublicResults.RLock()
	calls := mock.calls.PublicResults
	mock.lockPublicResults.RUnlock()
	return calls
}

func (mock *resultServiceMock) GalleryWorks(ctx context.Context) ([]domain.GalleryWork, error) {
	if mock.GalleryWorksFunc == nil {
		panic("resultServiceMock.GalleryWorksFunc: method is nil but resultService.GalleryWorks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGalleryWorks.Lock()
	mock.calls.GalleryWorks = append(mock.calls.GalleryWorks, callInfo)
	mock.lockGalleryWorks.Unlock()
	return mock.GalleryWorksFunc(ctx)
}

func (mock *resultServiceMock) GalleryWorksCalls() []struct {
	Ctx context.Context
} {
	mock.lockGalleryWorks.RLock()
	calls := mock.calls.GalleryWorks
	mock.lockGalleryWorks.RUnlock()
	return calls
}

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	ListReviewsFunc  func(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error)
	SubmitReviewFunc func(ctx context.Context, input review.SubmitInput) (*domain.Review, error)
	SetStatusFunc    func(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
	DeleteReviewFunc func(ctx context.Context, id int64) error

	calls struct {
		ListReviews []struct {
			Ctx    context.Context
			Status *domain.ReviewStatus
		}
		SubmitReview []struct {
			Ctx   context.Context
			Input review.SubmitInput
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.ReviewStatus
		}
		DeleteReview []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListReviews  sync.RWMutex
	lockSubmitReview sync.RWMutex
	lockSetStatus    sync.RWMutex
	lockDeleteReview sync.RWMutex
}

func (mock *reviewServiceMock) ListReviews(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error) {
	if mock.ListReviewsFunc == nil {
		panic("reviewServiceMock.ListReviewsFunc: method is nil but reviewService.ListReviews was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status *domain.ReviewStatus
	}{Ctx: ctx, Status: status}
	mock.lockListReviews.Lock()
	mock.calls.ListReviews = append(mock.calls.ListReviews, callInfo)
	mock.lockListReviews.Unlock()
	return mock.ListReviewsFunc(ctx, status)
}

func (mock *reviewServiceMock) ListReviewsCalls() []struct {
	Ctx    context.Context
	Status *domain.ReviewStatus
} {
	mock.lockListReviews.RLock()
	calls := mock.calls.ListReviews
	mock.lockListReviews.RUnlock()
	return calls
}

func (mock *reviewServiceMock) SubmitReview(ctx context.Context, input review.SubmitInput) (*domain.Review, error) {
	if mock.SubmitReviewFunc == nil {
		panic("reviewServiceMock.SubmitReviewFunc: method is nil but reviewService.SubmitReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitReview.Lock()
	mock.calls.SubmitReview = append(mock.calls.SubmitReview, callInfo)
	mock.lockSubmitReview.Unlock()
	return mock.SubmitReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) SubmitReviewCalls() []struct {
	Ctx   context.Context
	Input review.SubmitInput
} {
	mock.lockSubmitReview.RLock()
	calls := mock.calls.SubmitReview
	mock.lockSubmitReview.RUnlock()
	return calls
}

func (mock *reviewServiceMock) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	if mock.SetStatusFunc == nil {
		panic("reviewServiceMock.SetStatusFunc: method is nil but reviewService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.ReviewStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *reviewServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.ReviewStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *reviewServiceMock) DeleteReview(ctx context.Context, id int64) error {
	if mock.DeleteReviewFunc == nil {
		panic("reviewServiceMock.DeleteReviewFunc: method is nil but reviewService.DeleteReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteReview.Lock()
	mock.calls.DeleteReview = append(mock.calls.DeleteReview, callInfo)
	mock.lockDeleteReview.Unlock()
	return mock.DeleteReviewFunc(ctx, id)
}

func (mock *reviewServiceMock) DeleteReviewCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteReview.RLock()
	calls := mock.calls.DeleteReview
	mock.lockDeleteReview.RUnlock()
	return calls
}

var _ paymentService = &paymentServiceMock{}

type paymentServiceMock struct {
	CreatePaymentFunc func(ctx context.Context, input payment.CreateInput) (*payment.Session, error)
	HandleWebhookFunc func(ctx context.Context, input payment.WebhookInput) error

	calls struct {
		CreatePayment []struct {
			Ctx   context.Context
			Input payment.CreateInput
		}
		HandleWebhook []struct {
			Ctx   context.Context
			Input payment.WebhookInput
		}
	}
	lockCreatePayment sync.RWMutex
	lockHandleWebhook sync.RWMutex
}

func (mock *paymentServiceMock) CreatePayment(ctx context.Context, input payment.CreateInput) (*payment.Session, error) {
	if mock.CreatePaymentFunc == nil {
		panic("paymentServiceMock.CreatePaymentFunc: method is nil but paymentService.CreatePayment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input payment.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePayment.Lock()
	mock.calls.CreatePayment = append(mock.calls.CreatePayment, callInfo)
	mock.lockCreatePayment.Unlock()
	return mock.CreatePaymentFunc(ctx, input)
}

func (mock *paymentServiceMock) CreatePaymentCalls() []struct {
	Ctx   context.Context
	Input payment.CreateInput
} {
	mock.lockCreatePayment.RLock()
	calls := mock.calls.CreatePayment
	mock.lockCreatePayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) HandleWebhook(ctx context.Context, input payment.WebhookInput) error {
	if mock.HandleWebhookFunc == nil {
		panic("paymentServiceMock.HandleWebhookFunc: method is nil but paymentService.HandleWebhook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input payment.WebhookInput
	}{Ctx: ctx, Input: input}
	mock.lockHandleWebhook.Lock()
	mock.calls.HandleWebhook = append(mock.calls.HandleWebhook, callInfo)
	mock.lockHandleWebhook.Unlock()
	return mock.HandleWebhookFunc(ctx, input)
}

func (mock *paymentServiceMock) HandleWebhookCalls() []struct {
	Ctx   context.Context
	Input payment.WebhookInput
} {
	mock.lockHandleWebhook.RLock()
	calls := mock.calls.HandleWebhook
	mock.lockHandleWebhook.RUnlock()
	return calls
}

var _ uploadService = &uploadServiceMock{}

type uploadServiceMock struct {
	UploadFunc func(ctx context.Context, input upload.Input) (*upload.Result, error)

	calls struct {
		Upload []struct {
			Ctx   context.Context
			Input upload.Input
		}
	}
	lockUpload sync.RWMutex
}

func (mock *uploadServiceMock) Upload(ctx context.Context, input upload.Input) (*upload.Result, error) {
	if mock.UploadFunc == nil {
		panic("uploadServiceMock.UploadFunc: method is nil but uploadService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input upload.Input
	}{Ctx: ctx, Input: input}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *uploadServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input upload.Input
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
