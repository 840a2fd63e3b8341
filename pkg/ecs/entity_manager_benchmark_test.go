package ecs

import (
	"reflect"
	"testing"
)

type benchmarkPosition struct {
	X, Y float64
}

type benchmarkVelocity struct {
	VX, VY float64
}

type benchmarkMarker struct{}

// setupBenchmarkEntities creates count entities; every entity gets a position,
// every second one a velocity and every fourth one a marker.
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPosition{X: float64(i), Y: float64(i * 2)})
		if i%2 == 0 {
			em.AddComponent(id, &benchmarkVelocity{VX: 1, VY: -1})
		}
		if i%4 == 0 {
			em.AddComponent(id, &benchmarkMarker{})
		}
	}
	return em
}

func BenchmarkGetEntitiesWith_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(500)
	posType := reflect.TypeOf(&benchmarkPosition{})
	velType := reflect.TypeOf(&benchmarkVelocity{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(posType, velType)
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := setupBenchmarkEntities(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchmarkPosition, *benchmarkVelocity](em)
	}
}

func BenchmarkGetComponent_Generic(b *testing.B) {
	em := setupBenchmarkEntities(500)
	ids := GetEntitiesWith1[*benchmarkPosition](em)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range ids {
			_, _ = GetComponent[*benchmarkPosition](em, id)
		}
	}
}

func BenchmarkCreateDestroyCycle(b *testing.B) {
	em := NewEntityManager()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPosition{})
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}
}
