package payment

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/application"
)

var _ gateway = &gatewayMock{}

type gatewayMock struct {
	NameFunc          func() string
	CreatePaymentFunc func(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	GetPaymentFunc    func(ctx context.Context, id string) (*domain.Payment, error)

	calls struct {
		Name []struct{}
		CreatePayment []struct {
			Ctx context.Context
			Req domain.PaymentRequest
		}
		GetPayment []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockName          sync.RWMutex
	lockCreatePayment sync.RWMutex
	lockGetPayment    sync.RWMutex
}

func (mock *gatewayMock) Name() string {
	if mock.NameFunc == nil {
		panic("gatewayMock.NameFunc: method is nil but gateway.Name was just called")
	}
	callInfo := struct{}{}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, callInfo)
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *gatewayMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *gatewayMock) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	if mock.CreatePaymentFunc == nil {
		panic("gatewayMock.CreatePaymentFunc: method is nil but gateway.CreatePayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.PaymentRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreatePayment.Lock()
	mock.calls.CreatePayment = append(mock.calls.CreatePayment, callInfo)
	mock.lockCreatePayment.Unlock()
	return mock.CreatePaymentFunc(ctx, req)
}

func (mock *gatewayMock) CreatePaymentCalls() []struct {
	Ctx context.Context
	Req domain.PaymentRequest
} {
	mock.lockCreatePayment.RLock()
	calls := mock.calls.CreatePayment
	mock.lockCreatePayment.RUnlock()
	return calls
}

func (mock *gatewayMock) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	if mock.GetPaymentFunc == nil {
		panic("gatewayMock.GetPaymentFunc: method is nil but gateway.GetPayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetPayment.Lock()
	mock.calls.GetPayment = append(mock.calls.GetPayment, callInfo)
	mock.lockGetPayment.Unlock()
	return mock.GetPaymentFunc(ctx, id)
}

func (mock *gatewayMock) GetPaymentCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetPayment.RLock()
	calls := mock.calls.GetPayment
	mock.lockGetPayment.RUnlock()
	return calls
}

var _ applicationSubmitter = &applicationSubmitterMock{}

type applicationSubmitterMock struct {
	SubmitFunc func(ctx context.Context, input application.SubmitInput) (*domain.Application, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input application.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *applicationSubmitterMock) Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error) {
	if mock.SubmitFunc == nil {
		panic("applicationSubmitterMock.SubmitFunc: method is nil but applicationSubmitter.Submit was just called")
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

func (mock *applicationSubmitterMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input application.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	AttachPaymentFunc       func(ctx context.Context, id int64, paymentID string) error
	SetPaymentStatusFunc    func(ctx context.Context, paymentID string, status domain.PaymentStatus) (*domain.Application, error)
	ListPendingPaymentsFunc func(ctx context.Context, since time.Time) ([]domain.Application, error)
	SoftDeleteFunc          func(ctx context.Context, id int64) error

	calls struct {
		AttachPayment []struct {
			Ctx       context.Context
			ID        int64
			PaymentID string
		}
		SetPaymentStatus []struct {
			Ctx       context.Context
			PaymentID string
			Status    domain.PaymentStatus
		}
		ListPendingPayments []struct {
			Ctx   context.Context
			Since time.Time
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockAttachPayment       sync.RWMutex
	lockSetPaymentStatus    sync.RWMutex
	lockListPendingPayments sync.RWMutex
	lockSoftDelete          sync.RWMutex
}

func (mock *applicationRepoMock) AttachPayment(ctx context.Context, id int64, paymentID string) error {
	if mock.AttachPaymentFunc == nil {
		panic("applicationRepoMock.AttachPaymentFunc: method is nil but applicationRepo.AttachPayment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		PaymentID string
	}{Ctx: ctx, ID: id, PaymentID: paymentID}
	mock.lockAttachPayment.Lock()
	mock.calls.AttachPayment = append(mock.calls.AttachPayment, callInfo)
	mock.lockAttachPayment.Unlock()
	return mock.AttachPaymentFunc(ctx, id, paymentID)
}

func (mock *applicationRepoMock) AttachPaymentCalls() []struct {
	Ctx       context.Context
	ID        int64
	PaymentID string
} {
	mock.lockAttachPayment.RLock()
	calls := mock.calls.AttachPayment
	mock.lockAttachPayment.RUnlock()
	return calls
}

func (mock *applicationRepoMock) SetPaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) (*domain.Application, error) {
	if mock.SetPaymentStatusFunc == nil {
		panic("applicationRepoMock.SetPaymentStatusFunc: method is nil but applicationRepo.SetPaymentStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PaymentID string
		Status    domain.PaymentStatus
	}{Ctx: ctx, PaymentID: paymentID, Status: status}
	mock.lockSetPaymentStatus.Lock()
	mock.calls.SetPaymentStatus = append(mock.calls.SetPaymentStatus, callInfo)
	mock.lockSetPaymentStatus.Unlock()
	return mock.SetPaymentStatusFunc(ctx, paymentID, status)
}

func (mock *applicationRepoMock) SetPaymentStatusCalls() []struct {
	Ctx       context.Context
	PaymentID string
	Status    domain.PaymentStatus
} {
	mock.lockSetPaymentStatus.RLock()
	calls := mock.calls.SetPaymentStatus
	mock.lockSetPaymentStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListPendingPayments(ctx context.Context, since time.Time) ([]domain.Application, error) {
	if mock.ListPendingPaymentsFunc == nil {
		panic("applicationRepoMock.ListPendingPaymentsFunc: method is nil but applicationRepo.ListPendingPayments was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{Ctx: ctx, Since: since}
	mock.lockListPendingPayments.Lock()
	mock.calls.ListPendingPayments = append(mock.calls.ListPendingPayments, callInfo)
	mock.lockListPendingPayments.Unlock()
	return mock.ListPendingPaymentsFunc(ctx, since)
}

func (mock *applicationRepoMock) ListPendingPaymentsCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	mock.lockListPendingPayments.RLock()
	calls := mock.calls.ListPendingPayments
	mock.lockListPendingPayments.RUnlock()
	return calls
}

func (mock *applicationRepoMock) SoftDelete(ctx context.Context, id int64) error {
	if mock.SoftDeleteFunc == nil {
		panic("applicationRepoMock.SoftDeleteFunc: method is nil but applicationRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *applicationRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

var _ contestRepo = &contestRepoMock{}

type contestRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Contest, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *contestRepoMock) GetByID(ctx context.Context, id int64) (*domain.Contest, error) {
	if mock.GetByIDFunc == nil {
		panic("contestRepoMock.GetByIDFunc: method is nil but contestRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
