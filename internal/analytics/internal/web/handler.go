package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/domain"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/errs"
	"github.com/vrecruit/vrecruit/internal/analytics/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.AnalyticsService
}

func NewHandler(svc service.AnalyticsService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	analytics := server.Group("/analytics")
	analytics.POST("/report", ginx.B[ReportReq](h.Report))
	analytics.POST("/summarize", ginx.B[SummarizeReq](h.Summarize))
}

func (h *Handler) Report(ctx *ginx.Context, req ReportReq) (ginx.Result, error) {
	r, err := h.svc.Report(ctx, req.CandidateUid)
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Data: newReport(r),
	}, nil
}

// Summarize 永远 200，失败降级为占位文案
func (h *Handler) Summarize(ctx *ginx.Context, req SummarizeReq) (ginx.Result, error) {
	return ginx.Result{
		Data: SummarizeResp{
			Summary: h.svc.Summarize(ctx, req.Comments),
		},
	}, nil
}

type ReportReq struct {
	CandidateUid int64 `json:"candidateUid"`
}

type SummarizeReq struct {
	Comments []string `json:"comments"`
}

type SummarizeResp struct {
	Summary string `json:"summary"`
}

type RoundScore struct {
	Round    string `json:"round"`
	AvgScore int64  `json:"avgScore"`
	Score    int64  `json:"score"`
	MaxScore int64  `json:"maxScore"`
}

type SectionScore struct {
	Section  string `json:"section"`
	Score    int64  `json:"score"`
	Max      int64  `json:"max"`
	AvgScore int64  `json:"avgScore"`
	Comment  string `json:"comment"`
}

type CandidateInfo struct {
	Uid          int64  `json:"uid"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	FinalVerdict string `json:"finalVerdict"`
}

type Report struct {
	CandidateInfo CandidateInfo `json:"candidateInfo"`
	// Recommendation 推导出来的建议档位，finalVerdict 才是权威结论
	Recommendation   string         `json:"recommendation"`
	OverallScore     int64          `json:"overallScore"`
	TotalScoreSum    int64          `json:"totalScoreSum"`
	TotalMaxScoreSum int64          `json:"totalMaxScoreSum"`
	EvaluationCount  int            `json:"evaluationCount"`
	GroupedByRound   []RoundScore   `json:"groupedByRound"`
	SectionScores    []SectionScore `json:"sectionScores"`
	AISummary        string         `json:"aiSummary"`
}

func newReport(r domain.Report) Report {
	return Report{
		CandidateInfo: CandidateInfo{
			Uid:          r.CandidateInfo.Uid,
			Name:         r.CandidateInfo.Name,
			Position:     r.CandidateInfo.Position,
			FinalVerdict: r.CandidateInfo.FinalVerdict,
		},
		Recommendation:   r.Recommendation,
		OverallScore:     r.OverallScore,
		TotalScoreSum:    r.TotalScoreSum,
		TotalMaxScoreSum: r.TotalMaxScoreSum,
		EvaluationCount:  r.EvaluationCount,
		GroupedByRound: slice.Map(r.GroupedByRound, func(idx int, src domain.RoundScore) RoundScore {
			return RoundScore{
				Round:    src.Round,
				AvgScore: src.AvgScore,
				Score:    src.Score,
				MaxScore: src.MaxScore,
			}
		}),
		SectionScores: slice.Map(r.SectionScores, func(idx int, src domain.SectionScore) SectionScore {
			return SectionScore{
				Section:  src.Section,
				Score:    src.Score,
				Max:      src.Max,
				AvgScore: src.AvgScore,
				Comment:  src.Comment,
			}
		}),
		AISummary: r.AISummary,
	}
}
