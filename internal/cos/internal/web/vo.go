package web

type TmpAuthCodeReq struct {
	// Key 上传的文件名，不带目录，目录由服务端按 uid 拼
	Key string `json:"key"`
	// Type 上传时使用的 Content-Type，必须在白名单里
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
	// Key 服务端算好的完整对象路径，前端直接用
	Key string `json:"key"`
	// MaxSize 允许的最大字节数，前端上传前先校验
	MaxSize int64 `json:"maxSize"`
}
