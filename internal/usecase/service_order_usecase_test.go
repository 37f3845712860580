package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"assistec_os/internal/domain/entities"
	mock_interfaces "assistec_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCreateInput() CreateOSInput {
	return CreateOSInput{
		ClientID:      "cli-1",
		DeviceType:    "Smartphone",
		BrandModel:    "Samsung Galaxy S23",
		ReportedIssue: "Tela quebrada",
	}
}

func TestServiceOrderUseCase_Create_Validations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateOSInput)
	}{
		{name: "missing client id", mutate: func(in *CreateOSInput) { in.ClientID = " " }},
		{name: "missing device type", mutate: func(in *CreateOSInput) { in.DeviceType = "" }},
		{name: "missing brand model", mutate: func(in *CreateOSInput) { in.BrandModel = "" }},
		{name: "missing reported issue", mutate: func(in *CreateOSInput) { in.ReportedIssue = "  " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil)
			in := validCreateInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}

	t.Run("client lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(nil, clients, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validCreateInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(nil, clients, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), validCreateInput())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Create_DefaultsAndNumbering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
	uc := NewServiceOrderUseCase(orders, clients, nil, nil, gateway)

	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria Souza"}, nil)
	orders.EXPECT().NextOrderNumber(gomock.Any()).Return("#OS0042", nil)
	orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
		func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			if o.ID == "" {
				t.Fatalf("id must be generated")
			}
			if o.Number != "#OS0042" {
				t.Fatalf("expected allocated number, got %s", o.Number)
			}
			if o.Status != entities.OSStatusAguardando {
				t.Fatalf("expected default status aguardando, got %s", o.Status)
			}
			if o.Priority != entities.PriorityNormal {
				t.Fatalf("expected default priority normal, got %s", o.Priority)
			}
			if o.EstimatedDays != entities.DefaultEstimatedDays {
				t.Fatalf("expected default estimated days, got %d", o.EstimatedDays)
			}
			if o.CreatedAt.IsZero() || !o.CreatedAt.Equal(o.UpdatedAt) {
				t.Fatalf("timestamps must be set and equal on intake")
			}
			return o, nil
		},
	)
	gateway.EXPECT().Summarize(gomock.Any(), "Tela quebrada").Return("Resumo curto", nil)
	gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Samsung Galaxy S23", "Tela quebrada").Return("Possível dano no display", nil)
	orders.EXPECT().UpdateDiagnosis(gomock.Any(), gomock.Any(), "Possível dano no display", gomock.Any()).DoAndReturn(
		func(_ context.Context, id, diagnosis, notes string) (entities.ServiceOrder, error) {
			if !strings.Contains(notes, "Resumo: Resumo curto") {
				t.Fatalf("expected summary appended to notes, got %q", notes)
			}
			return entities.ServiceOrder{ID: id, Number: "#OS0042", ClientID: "cli-1", Diagnosis: diagnosis, Notes: notes}, nil
		},
	)

	res, err := uc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ClientName != "Maria Souza" {
		t.Fatalf("expected joined client name, got %q", res.ClientName)
	}
	if res.Diagnosis != "Possível dano no display" {
		t.Fatalf("expected enriched diagnosis, got %q", res.Diagnosis)
	}
}

func TestServiceOrderUseCase_Create_DegradedEnrichment(t *testing.T) {
	t.Run("summarize fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, gateway)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria"}, nil)
		orders.EXPECT().NextOrderNumber(gomock.Any()).Return("#OS0001", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		gateway.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

		res, err := uc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("degraded enrichment must not fail intake: %v", err)
		}
		if res.Diagnosis != "" {
			t.Fatalf("expected order as submitted, got diagnosis %q", res.Diagnosis)
		}
	})

	t.Run("persisting enrichment fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, gateway)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria"}, nil)
		orders.EXPECT().NextOrderNumber(gomock.Any()).Return("#OS0001", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		gateway.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("resumo", nil)
		gateway.EXPECT().PreDiagnose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("diag", nil)
		orders.EXPECT().UpdateDiagnosis(gomock.Any(), gomock.Any(), "diag", gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		res, err := uc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("persist failure must not fail intake: %v", err)
		}
		if res.Number != "#OS0001" {
			t.Fatalf("expected created order returned, got %+v", res)
		}
	})
}

func TestServiceOrderUseCase_Create_NumberingErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewServiceOrderUseCase(orders, clients, nil, nil, nil)

	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
	orders.EXPECT().NextOrderNumber(gomock.Any()).Return("", errors.New("counter"))

	_, err := uc.Create(context.Background(), validCreateInput())
	if err == nil || err.Error() != "counter" {
		t.Fatalf("expected counter error, got %v", err)
	}
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Update(context.Background(), "  ", UpdateOSInput{})
		if !errors.Is(err, ErrInvalidOSID) {
			t.Fatalf("expected ErrInvalidOSID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Update(context.Background(), "os-1", UpdateOSInput{})
		if !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("new client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", ClientID: "cli-1"}, nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-2").Return(entities.Client{}, nil)

		newClient := "cli-2"
		_, err := uc.Update(context.Background(), "os-1", UpdateOSInput{ClientID: &newClient})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("partial update leaves unset fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, nil)

		existing := entities.ServiceOrder{
			ID:            "os-1",
			Number:        "#OS0007",
			ClientID:      "cli-1",
			DeviceType:    "Notebook",
			BrandModel:    "Dell XPS",
			ReportedIssue: "Não liga",
			EstimatedDays: 5,
			BudgetValue:   350,
			Status:        entities.OSStatusAguardando,
			Priority:      entities.PriorityNormal,
		}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.BudgetValue != 499.9 {
					t.Fatalf("expected budget updated, got %v", o.BudgetValue)
				}
				if o.DeviceType != "Notebook" || o.EstimatedDays != 5 {
					t.Fatalf("unset fields must stay, got %+v", o)
				}
				if o.UpdatedAt.IsZero() {
					t.Fatalf("updated_at must be refreshed")
				}
				return o, nil
			},
		)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria"}, nil)

		budget := 499.9
		res, err := uc.Update(context.Background(), "os-1", UpdateOSInput{BudgetValue: &budget})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClientName != "Maria" {
			t.Fatalf("expected joined client name, got %q", res.ClientName)
		}
	})
}

func TestServiceOrderUseCase_Update_ProntoFanOut(t *testing.T) {
	pronto := entities.OSStatusPronto

	t.Run("transition into pronto notifies every active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, users, notifications, nil)

		existing := entities.ServiceOrder{ID: "os-1", Number: "#OS0007", ClientID: "cli-1", Status: entities.OSStatusEmReparo}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria"}, nil)
		users.EXPECT().ListActive(gomock.Any()).Return([]entities.User{{ID: "u1"}, {ID: "u2"}}, nil)
		notifications.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []entities.Notification) error {
				if len(batch) != 2 {
					t.Fatalf("expected one notification per active user, got %d", len(batch))
				}
				for _, n := range batch {
					if n.Type != entities.NotificationOSPronta {
						t.Fatalf("expected os_pronta type, got %s", n.Type)
					}
					if n.Title != "OS #OS0007 - Pronta para Retirada" {
						t.Fatalf("unexpected title %q", n.Title)
					}
					if n.Reference.OSID != "os-1" || n.Reference.ClientID != "cli-1" {
						t.Fatalf("unexpected reference %+v", n.Reference)
					}
				}
				return nil
			},
		)

		_, err := uc.Update(context.Background(), "os-1", UpdateOSInput{Status: &pronto})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already pronto does not notify again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, notifications, nil)

		existing := entities.ServiceOrder{ID: "os-1", ClientID: "cli-1", Status: entities.OSStatusPronto}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)

		_, err := uc.Update(context.Background(), "os-1", UpdateOSInput{Status: &pronto})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fan-out failure does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, users, notifications, nil)

		existing := entities.ServiceOrder{ID: "os-1", ClientID: "cli-1", Status: entities.OSStatusAguardando}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		users.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db"))

		res, err := uc.Update(context.Background(), "os-1", UpdateOSInput{Status: &pronto})
		if err != nil {
			t.Fatalf("fan-out failure must be swallowed: %v", err)
		}
		if res.Status != entities.OSStatusPronto {
			t.Fatalf("expected updated status, got %s", res.Status)
		}
	})
}

func TestServiceOrderUseCase_RegenerateDiagnosis(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.RegenerateDiagnosis(context.Background(), " os-1 ")
		if !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("gateway failure maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", DeviceType: "Smartphone", BrandModel: "Moto G", ReportedIssue: "Não carrega"}, nil)
		gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Moto G", "Não carrega").Return("", errors.New("timeout"))

		_, err := uc.RegenerateDiagnosis(context.Background(), "os-1")
		if !errors.Is(err, ErrDiagnosisUnavailable) {
			t.Fatalf("expected ErrDiagnosisUnavailable, got %v", err)
		}
	})

	t.Run("order deleted before persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", DeviceType: "Smartphone", BrandModel: "Moto G", ReportedIssue: "Não carrega"}, nil)
		gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Moto G", "Não carrega").Return("Conector de carga danificado", nil)
		orders.EXPECT().UpdateDiagnosis(gomock.Any(), "os-1", "Conector de carga danificado", "").Return(entities.ServiceOrder{}, nil)

		_, err := uc.RegenerateDiagnosis(context.Background(), "os-1")
		if !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("success persists and returns diagnosis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, gateway)

		existing := entities.ServiceOrder{ID: "os-1", DeviceType: "Smartphone", BrandModel: "Moto G", ReportedIssue: "Não carrega", Notes: "cliente apressado"}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)
		gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Moto G", "Não carrega").Return("Conector de carga danificado", nil)
		orders.EXPECT().UpdateDiagnosis(gomock.Any(), "os-1", "Conector de carga danificado", "cliente apressado").Return(existing, nil)

		diagnosis, err := uc.RegenerateDiagnosis(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diagnosis != "Conector de carga danificado" {
			t.Fatalf("unexpected diagnosis %q", diagnosis)
		}
	})
}

func TestServiceOrderUseCase_PreviewDiagnosis(t *testing.T) {
	t.Run("missing params", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil)
		_, err := uc.PreviewDiagnosis(context.Background(), "Smartphone", " ", "Não liga")
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, gateway)

		gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Moto G", "Não liga").Return("", errors.New("down"))

		_, err := uc.PreviewDiagnosis(context.Background(), "Smartphone", "Moto G", "Não liga")
		if !errors.Is(err, ErrDiagnosisUnavailable) {
			t.Fatalf("expected ErrDiagnosisUnavailable, got %v", err)
		}
	})

	t.Run("success trims params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDiagnosisGateway(ctrl)
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, gateway)

		gateway.EXPECT().PreDiagnose(gomock.Any(), "Smartphone", "Moto G", "Não liga").Return("diag", nil)

		diagnosis, err := uc.PreviewDiagnosis(context.Background(), " Smartphone ", " Moto G ", " Não liga ")
		if err != nil || diagnosis != "diag" {
			t.Fatalf("unexpected result err=%v diagnosis=%q", err, diagnosis)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidOSID) {
			t.Fatalf("expected ErrInvalidOSID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().Delete(gomock.Any(), "os-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "os-1"); !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().Delete(gomock.Any(), "os-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_GetAndList(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Get(context.Background(), "os-1")
		if !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("get joins client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", ClientID: "cli-1"}, nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria"}, nil)

		res, err := uc.Get(context.Background(), "os-1")
		if err != nil || res.ClientName != "Maria" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("list resolves names once per client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, clients, nil, nil, nil)

		orders.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: "os-1", ClientID: "cli-1"},
			{ID: "os-2", ClientID: "cli-2"},
			{ID: "os-3", ClientID: "cli-1"},
		}, nil)
		clients.EXPECT().GetNamesByIDs(gomock.Any(), []string{"cli-1", "cli-2"}).Return(map[string]string{
			"cli-1": "Maria",
			"cli-2": "João",
		}, nil)

		res, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(res))
		}
		if res[0].ClientName != "Maria" || res[1].ClientName != "João" || res[2].ClientName != "Maria" {
			t.Fatalf("unexpected joined names: %+v", res)
		}
	})

	t.Run("list repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(orders, nil, nil, nil, nil)

		orders.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
