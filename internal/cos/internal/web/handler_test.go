package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	t.Parallel()
	h := NewHandler("id", "key", "125000000", "vrecruit-resume", "ap-nanjing")
	testCases := []struct {
		name string
		req  TmpAuthCodeReq
		want bool
	}{
		{
			name: "PDF 简历",
			req:  TmpAuthCodeReq{Key: "resume.pdf", Type: "application/pdf"},
			want: true,
		},
		{
			name: "docx 简历",
			req: TmpAuthCodeReq{
				Key:  "李四.DOCX",
				Type: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			},
			want: true,
		},
		{
			name: "可执行文件",
			req:  TmpAuthCodeReq{Key: "evil.exe", Type: "application/pdf"},
			want: false,
		},
		{
			name: "扩展名和类型不匹配也不行",
			req:  TmpAuthCodeReq{Key: "resume.pdf", Type: "image/png"},
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, h.allowed(tc.req))
		})
	}
}
