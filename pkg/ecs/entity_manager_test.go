package ecs

import (
	"reflect"
	"testing"
)

type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestEntityIDsAreNeverReused(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	em.DestroyEntity(id1)
	em.RemoveMarkedEntities()

	id2 := em.CreateEntity()
	if id2 == id1 {
		t.Errorf("Expected a fresh handle after removal, got reused %d", id2)
	}
	if em.IsAlive(id1) {
		t.Error("Removed handle should not be alive")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testVelocityComponent{VX: 3, VY: 4})

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok {
		t.Fatal("Velocity should be found through the generic accessor")
	}
	if vel.VX != 3 || vel.VY != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", vel.VX, vel.VY)
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Position should not be found")
	}
	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report the velocity")
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Velocity should be gone after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// storage survives until the flush, but the entity is already dead
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity storage should still exist before cleanup")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if got := len(GetEntitiesWith1[*testPositionComponent](em)); got != 0 {
		t.Errorf("Marked entity should not match queries, got %d matches", got)
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyEntityIsIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	other := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if em.Count() != 1 {
		t.Errorf("Expected 1 live entity, got %d", em.Count())
	}

	em.RemoveMarkedEntities()
	em.DestroyEntity(id)
	em.DestroyEntity(InvalidEntity)
	em.DestroyEntity(EntityID(999))
	em.RemoveMarkedEntities()

	if !em.IsAlive(other) {
		t.Error("Unrelated entity should survive repeated destroys")
	}
	if em.Count() != 1 {
		t.Errorf("Expected 1 live entity, got %d", em.Count())
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		em.CreateEntity()
	}

	em.DestroyAll()
	if em.Count() != 0 {
		t.Errorf("Expected 0 live entities after DestroyAll, got %d", em.Count())
	}
	em.RemoveMarkedEntities()

	id := em.CreateEntity()
	if !em.IsAlive(id) || em.Count() != 1 {
		t.Error("Manager should keep working after DestroyAll")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)
	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}
	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, both)
	}
}

func TestGetEntitiesWithIsOrderedByID(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		want = append(want, id)
	}

	// query repeatedly: map iteration order must not leak through
	for round := 0; round < 10; round++ {
		got := GetEntitiesWith1[*testPositionComponent](em)
		if len(got) != len(want) {
			t.Fatalf("Expected %d entities, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Round %d: expected %d at index %d, got %d", round, want[i], i, got[i])
			}
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}
