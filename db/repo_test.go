package db

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 5, 0, 5},
		{3, 20, 3, 20},
		{-1, 5, 0, 5},    // 负页码归零
		{0, 0, 0, 10},    // 缺省分页
		{0, -5, 0, 10},   // 非法页大小
		{0, 1000, 0, 10}, // 页大小封顶
	}
	for _, tt := range tests {
		gotPage, gotSize := NormalizePage(tt.page, tt.size)
		if gotPage != tt.wantPage || gotSize != tt.wantSize {
			t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, gotPage, gotSize, tt.wantPage, tt.wantSize)
		}
	}
}
