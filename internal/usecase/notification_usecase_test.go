package usecase

import (
	"context"
	"errors"
	"testing"

	"assistec_os/internal/domain/entities"
	mock_interfaces "assistec_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_List(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.List(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("passes the page limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		expected := []entities.Notification{{ID: "n1", UserID: "u1"}}
		repo.EXPECT().ListByUser(gomock.Any(), "u1", 50).Return(expected, nil)

		res, err := uc.List(context.Background(), " u1 ")
		if err != nil || len(res) != 1 || res[0].ID != "n1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if err := uc.MarkRead(context.Background(), "", "n1"); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not owned behaves as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "u1", "n1").Return(false, nil)

		if err := uc.MarkRead(context.Background(), "u1", "n1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "u1", "n1").Return(false, errors.New("db"))

		if err := uc.MarkRead(context.Background(), "u1", "n1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "u1", "n1").Return(true, nil)

		if err := uc.MarkRead(context.Background(), "u1", "n1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if err := uc.MarkAllRead(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkAllRead(gomock.Any(), "u1").Return(nil)

		if err := uc.MarkAllRead(context.Background(), "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_Delete(t *testing.T) {
	t.Run("cross-user delete behaves as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().DeleteForUser(gomock.Any(), "u2", "n1").Return(false, nil)

		if err := uc.Delete(context.Background(), "u2", "n1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().DeleteForUser(gomock.Any(), "u1", "n1").Return(true, nil)

		if err := uc.Delete(context.Background(), "u1", "n1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_UnreadCount(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.UnreadCount(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().CountUnread(gomock.Any(), "u1").Return(7, nil)

		count, err := uc.UnreadCount(context.Background(), "u1")
		if err != nil || count != 7 {
			t.Fatalf("unexpected result err=%v count=%d", err, count)
		}
	})
}

func TestNotificationBuilders(t *testing.T) {
	order := entities.ServiceOrder{ID: "os-1", Number: "#OS0012", ClientID: "cli-1"}

	t.Run("os atrasada", func(t *testing.T) {
		n := NewOSAtrasadaNotification(order, "Maria", "u1")
		if n.ID == "" || n.CreatedAt.IsZero() {
			t.Fatalf("id and created_at must be set: %+v", n)
		}
		if n.Type != entities.NotificationOSAtrasada || n.Priority != entities.PriorityAlta {
			t.Fatalf("unexpected type/priority: %+v", n)
		}
		if n.Title != "OS #OS0012 - Prazo Vencido" {
			t.Fatalf("unexpected title %q", n.Title)
		}
		if n.Message != "Cliente Maria aguardando retorno. Prazo estimado excedido." {
			t.Fatalf("unexpected message %q", n.Message)
		}
		if n.Reference.OSID != "os-1" || n.Reference.ClientID != "cli-1" {
			t.Fatalf("unexpected reference %+v", n.Reference)
		}
	})

	t.Run("estoque critico", func(t *testing.T) {
		n := NewEstoqueCriticoNotification(entities.StockItem{ID: "p1", Name: "Tela iPhone 13", Quantity: 2, MinQuantity: 5}, "u1")
		if n.Type != entities.NotificationEstoqueCritico || n.Priority != entities.PriorityAlta {
			t.Fatalf("unexpected type/priority: %+v", n)
		}
		if n.Title != "Tela iPhone 13 - Estoque Crítico" {
			t.Fatalf("unexpected title %q", n.Title)
		}
		if n.Message != "Apenas 2 unidades disponíveis (mínimo: 5)." {
			t.Fatalf("unexpected message %q", n.Message)
		}
		if n.Reference.ProductID != "p1" {
			t.Fatalf("unexpected reference %+v", n.Reference)
		}
	})

	t.Run("os pronta", func(t *testing.T) {
		n := NewOSProntaNotification(order, "Maria", "u1")
		if n.Type != entities.NotificationOSPronta || n.Priority != entities.PriorityNormal {
			t.Fatalf("unexpected type/priority: %+v", n)
		}
		if n.Title != "OS #OS0012 - Pronta para Retirada" {
			t.Fatalf("unexpected title %q", n.Title)
		}
		if n.Message != "Aparelho de Maria está pronto. Cliente deve ser contactado." {
			t.Fatalf("unexpected message %q", n.Message)
		}
	})

	t.Run("cliente novo", func(t *testing.T) {
		n := NewClienteNovoNotification(entities.Client{ID: "cli-9", Name: "João"}, "u1")
		if n.Type != entities.NotificationClienteNovo || n.Priority != entities.PriorityBaixa {
			t.Fatalf("unexpected type/priority: %+v", n)
		}
		if n.Title != "Novo Cliente Cadastrado" {
			t.Fatalf("unexpected title %q", n.Title)
		}
		if n.Reference.ClientID != "cli-9" {
			t.Fatalf("unexpected reference %+v", n.Reference)
		}
	})

	t.Run("dedup key shape", func(t *testing.T) {
		n := NewOSAtrasadaNotification(order, "Maria", "u1")
		want := "os_atrasada#u1#os=os-1;cliente=cli-1;produto="
		if n.DedupKey() != want {
			t.Fatalf("expected %q, got %q", want, n.DedupKey())
		}
	})
}
