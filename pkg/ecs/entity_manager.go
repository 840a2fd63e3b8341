package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，永不复用
// 0 保留为无效ID
type EntityID uint64

// InvalidEntity 查询不到实体时返回的无效ID
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 销毁分两步：DestroyEntity 只做标记，标记后的实体不再存活、也不会被查询命中；
// RemoveMarkedEntities 才真正释放组件存储。
// 查询结果按ID升序（即创建顺序）返回，系统遍历顺序是确定的。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表（按标记顺序）
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除
// 对不存在、已标记或已删除的实体重复调用不产生任何效果
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	if _, already := em.marked[id]; already {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// DestroyAll 标记所有存活实体待删除
func (em *EntityManager) DestroyAll() {
	for _, id := range em.sortedIDs() {
		em.DestroyEntity(id)
	}
}

// IsAlive 检查实体是否存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, marked := em.marked[id]
	return !marked
}

// IsMarked 检查实体是否已标记、等待 RemoveMarkedEntities
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, marked := em.marked[id]
	return marked
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.components) - len(em.marked)
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 移除实体的指定类型组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的指定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有指定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 删除所有被标记的实体
// 通常在每个阶段结束时调用
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith 查询拥有所有指定组件的存活实体，按ID升序返回
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.sortedIDs() {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// sortedIDs 返回升序排列的存活实体ID
func (em *EntityManager) sortedIDs() []EntityID {
	ids := make([]EntityID, 0, len(em.components))
	for id := range em.components {
		if _, marked := em.marked[id]; marked {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
