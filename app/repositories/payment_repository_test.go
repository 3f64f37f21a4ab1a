package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tcac/app/models/payment"
	"tcac/app/models/user"
)

func seedUser(t *testing.T, id, firstName, lastName string) {
	t.Helper()
	repo := NewUserRepository()
	err := repo.Create(context.Background(), &user.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: firstName,
		LastName:  lastName,
		Role:      user.RoleUser,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
}

func seedPayment(t *testing.T, repo *PaymentRepository, userID, status string, amount int64) *payment.Payment {
	t.Helper()
	p := &payment.Payment{
		OrderNo:  fmt.Sprintf("TEST%d", time.Now().UnixNano()),
		UserID:   userID,
		Provider: string(payment.ProviderOffline),
		Amount:   amount,
		Status:   status,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("创建缴费记录失败: %v", err)
	}
	return p
}

func TestPaymentRepository_CreateDefaultsToPending(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()

	p := &payment.Payment{
		OrderNo:  "ORDER1",
		UserID:   "u1",
		Provider: string(payment.ProviderOffline),
		Amount:   50000,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsPending() {
		t.Errorf("新记录状态 = %q, 期望 pending", got.Status)
	}
	if got.AdminComment != "" || got.DecidedBy != "" || got.DecidedAt != nil {
		t.Errorf("新记录不应携带审核字段: %+v", got)
	}
}

func TestPaymentRepository_Decide(t *testing.T) {
	tests := []struct {
		name    string
		status  string // 记录的初始状态
		target  string
		comment string
		wantErr error
	}{
		{"通过待审核记录", "pending", "approved", "凭证核对无误", nil},
		{"驳回待审核记录", "pending", "rejected", "金额不符", nil},
		{"已通过的记录不可再审", "approved", "rejected", "", ErrAlreadyDecided},
		{"已驳回的记录不可再审", "rejected", "approved", "", ErrAlreadyDecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDB(t)
			repo := NewPaymentRepository()
			p := seedPayment(t, repo, "u1", tt.status, 50000)

			got, err := repo.Decide(context.Background(), p.ID, tt.target, tt.comment, "admin-1", time.Time{})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decide err = %v, 期望 %v", err, tt.wantErr)
				}
				// 终态记录必须保持原状
				current, gerr := repo.GetByID(context.Background(), p.ID)
				if gerr != nil {
					t.Fatalf("GetByID: %v", gerr)
				}
				if current.Status != tt.status {
					t.Errorf("失败的审核改变了状态: %q -> %q", tt.status, current.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if got.Status != tt.target {
				t.Errorf("状态 = %q, 期望 %q", got.Status, tt.target)
			}
			if got.AdminComment != tt.comment {
				t.Errorf("审核意见 = %q, 期望 %q", got.AdminComment, tt.comment)
			}
			if got.DecidedBy != "admin-1" {
				t.Errorf("审核人 = %q, 期望 admin-1", got.DecidedBy)
			}
			if got.DecidedAt == nil {
				t.Error("审核时间未写入")
			}
		})
	}
}

func TestPaymentRepository_DecideInvalidTarget(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()
	p := seedPayment(t, repo, "u1", "pending", 50000)

	// pending 不是审核目标状态，终态只有 approved / rejected
	if _, err := repo.Decide(context.Background(), p.ID, "pending", "", "admin-1", time.Time{}); err == nil {
		t.Error("目标状态为 pending 时应该报错")
	}
}

func TestPaymentRepository_DecideNotFound(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()

	_, err := repo.Decide(context.Background(), 9999, "approved", "", "admin-1", time.Time{})
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("err = %v, 期望 ErrPaymentNotFound", err)
	}
}

func TestPaymentRepository_DecideStaleVersion(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()
	p := seedPayment(t, repo, "u1", "pending", 50000)

	// 携带一个早于当前记录的版本时间戳，模拟另一位管理员先行修改
	stale := p.UpdatedAt.Add(-time.Hour)
	_, err := repo.Decide(context.Background(), p.ID, "approved", "", "admin-1", stale)
	if !errors.Is(err, ErrStaleDecision) {
		t.Fatalf("err = %v, 期望 ErrStaleDecision", err)
	}

	// 记录保持待审核，不受过期写入影响
	current, gerr := repo.GetByID(context.Background(), p.ID)
	if gerr != nil {
		t.Fatalf("GetByID: %v", gerr)
	}
	if !current.IsPending() {
		t.Errorf("过期写入改变了状态: %q", current.Status)
	}
}

func TestPaymentRepository_ListFilters(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()
	seedUser(t, "u1", "Ada", "Obi")
	seedUser(t, "u2", "Ben", "Ade")

	seedPayment(t, repo, "u1", "pending", 10000)
	seedPayment(t, repo, "u1", "approved", 20000)
	seedPayment(t, repo, "u2", "pending", 30000)

	tests := []struct {
		name      string
		filter    PaymentFilter
		wantTotal int64
	}{
		{"不筛选返回全部", PaymentFilter{}, 3},
		{"按状态筛选", PaymentFilter{Status: "pending"}, 2},
		{"终态筛选", PaymentFilter{Status: "approved"}, 1},
		{"按名字搜索不区分大小写", PaymentFilter{Search: "ada"}, 2},
		{"按姓氏子串搜索", PaymentFilter{Search: "Ob"}, 2},
		{"状态和搜索取交集", PaymentFilter{Status: "pending", Search: "ada"}, 1},
		{"搜不到返回空集", PaymentFilter{Search: "nobody"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments, total, err := repo.List(context.Background(), tt.filter, 1, 10)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, 期望 %d", total, tt.wantTotal)
			}
			if int64(len(payments)) != tt.wantTotal {
				t.Errorf("返回条数 = %d, 期望 %d", len(payments), tt.wantTotal)
			}
		})
	}
}

func TestPaymentRepository_ListPagination(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()
	for i := 0; i < 5; i++ {
		seedPayment(t, repo, "u1", "pending", int64(1000*(i+1)))
	}

	page1, total, err := repo.List(context.Background(), PaymentFilter{}, 1, 2)
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, 期望 5", total)
	}
	if len(page1) != 2 {
		t.Errorf("第 1 页条数 = %d, 期望 2", len(page1))
	}

	page3, _, err := repo.List(context.Background(), PaymentFilter{}, 3, 2)
	if err != nil {
		t.Fatalf("List page 3: %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("第 3 页条数 = %d, 期望 1", len(page3))
	}
}

func TestPaymentRepository_CountByStatus(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()

	seedPayment(t, repo, "u1", "pending", 10000)
	seedPayment(t, repo, "u1", "pending", 20000)
	seedPayment(t, repo, "u2", "approved", 30000)

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}

	want := map[string]int64{"pending": 2, "approved": 1, "rejected": 0}
	for status, n := range want {
		if counts[status] != n {
			t.Errorf("counts[%q] = %d, 期望 %d", status, counts[status], n)
		}
	}

	// 没有记录的状态也必须出现在结果里
	if _, ok := counts["rejected"]; !ok {
		t.Error("零记录状态缺失")
	}
}

func TestPaymentRepository_ListByUser(t *testing.T) {
	setupTestDB(t)
	repo := NewPaymentRepository()

	seedPayment(t, repo, "u1", "pending", 10000)
	seedPayment(t, repo, "u1", "approved", 20000)
	seedPayment(t, repo, "u2", "pending", 30000)

	payments, total, err := repo.ListByUser(context.Background(), "u1", 1, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, 期望 2", total)
	}
	for _, p := range payments {
		if p.UserID != "u1" {
			t.Errorf("混入了其他用户的记录: %+v", p)
		}
	}
}
