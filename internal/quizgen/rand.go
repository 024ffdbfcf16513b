package quizgen

import "math/rand/v2"

// Rand 随机源接口，供采样器与构建器注入（测试中使用固定种子的 PCG）。
// *rand.Rand (math/rand/v2) 直接满足该接口。
type Rand interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand 返回进程级随机源。math/rand/v2 顶层函数并发安全，
// 单个实例可在各请求处理器间共享。
func SystemRand() Rand { return systemRand{} }
