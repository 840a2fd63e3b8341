//go:build !mobile

// 桌面构建时的占位文件：skyshooter 的移动端绑定只在 -tags mobile 下编译，
// 这里保留一个导出符号，让 ./... 构建和 gomobile bind 的包路径在桌面端同样有效。
package mobile

// Dummy 桌面端空实现，与 mobile.go 中的同名函数对应
func Dummy() {}
