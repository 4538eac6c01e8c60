package types

// SubmitFullReportRequest 产品全流程报告（operationcode 45）的表单元数据.
// 字段名沿用旧系统的表单键，creatorTime 为日期（2006-01-02）.
type SubmitFullReportRequest struct {
	Token           *string `form:"token"`
	OperationCode   int     `form:"operationcode"`
	RpNumber        string  `form:"rp_number"        rule:"required,max=100"`
	Creator         string  `form:"creator"          rule:"required,max=100"`
	ProductName     string  `form:"product_name"     rule:"required,max=200"`
	ProductCode     string  `form:"product_code"     rule:"required,max=100"`
	CreatorTime     string  `form:"creatorTime"      rule:"required,datetime=2006-01-02"`
	VerificationMan string  `form:"verification_man" rule:"required,max=100"`
	ProLeader       string  `form:"pro_leader"       rule:"required,max=100"`
	RecipeLeader    string  `form:"recipe_leader"    rule:"required,max=100"`
}

// 提交结果状态.
const (
	FullReportStateSuccess = "success"
	FullReportStateFail    = "fail"
)

// SubmitFullReportResponse 固定形态的提交结果，不回传失败原因.
type SubmitFullReportResponse struct {
	OperationCode int    `json:"operationcode"`
	State         string `json:"state"`
}
