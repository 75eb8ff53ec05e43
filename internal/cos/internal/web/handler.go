// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

// resumeMaxSize 简历限制 5MB，策略和返回值里都带上
const resumeMaxSize = int64(5 * 1024 * 1024)

var _ ginx.Handler = &Handler{}

type Handler struct {
	client *sts.Client
	// 临时密钥的权限
	actions []string
	// 简历只允许这些 Content-Type
	contentTypes []string
	// 简历只允许这些扩展名
	extensions []string

	appID  string
	bucket string
	region string
}

func NewHandler(secretID, secretKey, appid, bucket,
	region string) *Handler {
	c := sts.NewClient(
		secretID,
		secretKey,
		http.DefaultClient,
	)
	return &Handler{client: c,
		region: region,
		appID:  appid,
		bucket: bucket,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
		contentTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		extensions: []string{".pdf", ".doc", ".docx"},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/authorization", ginx.BS(h.TempAuthCode))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

// TempAuthCode 签发只能传到自己简历目录下的临时密钥
func (h *Handler) TempAuthCode(ctx *ginx.Context,
	req TmpAuthCodeReq, sess session.Session) (ginx.Result, error) {
	if !h.allowed(req) {
		return invalidResumeFileResult, nil
	}
	// 对象路径固定为 resume/<uid>/<文件名>，避免覆盖别人的文件
	key := fmt.Sprintf("resume/%d/%s", sess.Claims().Uid, filepath.Base(req.Key))
	// 策略概述 https://cloud.tencent.com/document/product/436/18023
	// 存储桶的命名格式为 BucketName-APPID，此处填写的 bucket 必须为此格式
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.region, h.appID,
		h.bucket, h.appID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
						"numeric_less_than_equal": {
							"cos:content-length": resumeMaxSize,
						},
					},
				},
			},
		},
	}

	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    int64(res.StartTime),
			ExpiredTime:  int64(res.ExpiredTime),
			Key:          key,
			MaxSize:      resumeMaxSize,
		},
	}, nil
}

func (h *Handler) allowed(req TmpAuthCodeReq) bool {
	ext := strings.ToLower(filepath.Ext(req.Key))
	return slice.Contains(h.extensions, ext) &&
		slice.Contains(h.contentTypes, req.Type)
}
