// Package main 启动应用程序
package main

import "github.com/yeisme/reportvault/pkg/cmd"

//	@title			ReportVault API
//	@version		1.0
//	@description	ReportVault 是一个报告提交与归档服务，提供报告类型目录、动态字段报告提交和产品全流程报告接入等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
