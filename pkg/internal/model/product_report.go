package model

import "time"

// ProductFullReport 产品全流程报告记录（operationcode 45）.
// 与 ReportType/Report 体系无关，固定表结构，一次提交一条，不提供更新与删除操作.
// CreatorTime 与 FileName 沿用旧系统的列名.
type ProductFullReport struct {
	ID              uint      `gorm:"primaryKey"                json:"id"`
	Token           *string   `gorm:"size:255"                  json:"token,omitempty"`
	OperationCode   int       `gorm:"not null;default:45"       json:"operationcode"`
	RpNumber        string    `gorm:"size:100;not null"         json:"rp_number"`
	Creator         string    `gorm:"size:100;not null"         json:"creator"`
	ProductName     string    `gorm:"size:200;not null"         json:"product_name"`
	ProductCode     string    `gorm:"size:100;not null;index"   json:"product_code"`
	CreatorTime     time.Time `gorm:"column:creatorTime;not null" json:"creator_time"`
	VerificationMan string    `gorm:"size:100;not null"         json:"verification_man"`
	ProLeader       string    `gorm:"size:100;not null"         json:"pro_leader"`
	RecipeLeader    string    `gorm:"size:100;not null"         json:"recipe_leader"`
	FileName        *string   `gorm:"column:FileName;size:500"  json:"file_name,omitempty"`
	// IsDelete 软删除标记，历史遗留字段；当前没有任何操作会将其置 1
	IsDelete int `gorm:"not null;default:0" json:"is_delete"`
}
