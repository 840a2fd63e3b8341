//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端也按移动端处理输入
const MobileEmulateEnv = "SHOOTER_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时默认返回 false，可以通过 SHOOTER_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
