package utils

import (
	"testing"
)

func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()
	if len(no) < 14 {
		t.Errorf("订单号过短: %q", no)
	}
}

func TestGenerateNonceStr(t *testing.T) {
	a := GenerateNonceStr()
	b := GenerateNonceStr()

	if len(a) != 32 {
		t.Errorf("随机串长度 = %d, 期望 32", len(a))
	}
	if a == b {
		t.Error("连续两次生成不应相同")
	}
}
