package system

import (
	"testing"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
	"go-arcade-shooter/pkg/pool"
)

func newEnemyPool(t *testing.T, capacity int) *pool.Pool[component.Enemy] {
	t.Helper()
	p, err := pool.New(capacity, func() *component.Enemy { return &component.Enemy{} })
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func spawnTestEnemy(t *testing.T, p *pool.Pool[component.Enemy], id uint64, pos geom.Vec2, health int) *component.Enemy {
	t.Helper()
	e := p.Acquire()
	if e == nil {
		t.Fatal("enemy pool exhausted in test setup")
	}
	shape, err := collision.NewBoxShape(geom.V(0, 0), 30, 30)
	if err != nil {
		t.Fatal(err)
	}
	*e = component.Enemy{ID: id, Shape: shape, Health: health, MaxHealth: health, ContactDamage: 1, ScoreValue: 100}
	e.Place(pos)
	return e
}

func collisionFixture(t *testing.T) (*CollisionSystem, *pool.Pool[component.Projectile], *pool.Pool[component.Enemy], *event.Dispatcher, *component.Ship) {
	t.Helper()
	projectiles := newProjectilePool(t, 8)
	enemies := newEnemyPool(t, 8)
	dispatcher := event.NewDispatcher()
	ship := newTestShip()
	return NewCollisionSystem(projectiles, enemies, dispatcher), projectiles, enemies, dispatcher, ship
}

func TestCollision_HitCallbackFiresExactlyOnce(t *testing.T) {
	sys, projectiles, enemies, _, ship := collisionFixture(t)
	ship.Place(geom.V(700, 500)) // out of the way
	spawnTestEnemy(t, enemies, 1, geom.V(100, 100), 1000)

	p := projectiles.Acquire()
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 4)
	p.Spawn(geom.V(100, 100), geom.V(0, 0), component.SidePlayer, 25, 100, shape)
	hits := 0
	p.OnHit = func() { hits++ }

	// Two passes in the same update window: damage and callback must not
	// double-apply even though the projectile still overlaps.
	sys.Update(ship)
	sys.Update(ship)

	if hits != 1 {
		t.Errorf("hit callback fired %d times, want exactly 1", hits)
	}
	if projectiles.Len() != 0 {
		t.Error("projectile not deactivated after hit")
	}
	if got := enemies.Active()[0].Health; got != 975 {
		t.Errorf("enemy health = %d, want 975 (damage applied once)", got)
	}
}

func TestCollision_EnemyDestroyedEventAndRelease(t *testing.T) {
	sys, projectiles, enemies, dispatcher, ship := collisionFixture(t)
	ship.Place(geom.V(700, 500))
	spawnTestEnemy(t, enemies, 42, geom.V(100, 100), 10)

	var destroyed []event.EnemyDestroyedData
	dispatcher.Subscribe(event.EnemyDestroyed, event.ListenerFunc(func(e event.Event) {
		destroyed = append(destroyed, e.Data.(event.EnemyDestroyedData))
	}))

	p := projectiles.Acquire()
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 4)
	p.Spawn(geom.V(100, 100), geom.V(0, 0), component.SidePlayer, 25, 100, shape)

	sys.Update(ship)

	if len(destroyed) != 1 {
		t.Fatalf("EnemyDestroyed dispatched %d times, want 1", len(destroyed))
	}
	if destroyed[0].ID != 42 || destroyed[0].ScoreValue != 100 {
		t.Errorf("event data = %+v", destroyed[0])
	}
	if enemies.Len() != 0 {
		t.Error("destroyed enemy not released to the pool")
	}
}

func TestCollision_MissedProjectileKeepsFlying(t *testing.T) {
	sys, projectiles, enemies, _, ship := collisionFixture(t)
	ship.Place(geom.V(700, 500))
	spawnTestEnemy(t, enemies, 1, geom.V(100, 100), 50)

	p := projectiles.Acquire()
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 4)
	p.Spawn(geom.V(400, 400), geom.V(0, 0), component.SidePlayer, 25, 100, shape)

	sys.Update(ship)
	if projectiles.Len() != 1 {
		t.Error("projectile with no contact was deactivated")
	}
	if enemies.Active()[0].Health != 50 {
		t.Error("enemy damaged without contact")
	}
}

func TestCollision_EnemyShotHitsShip(t *testing.T) {
	sys, projectiles, _, dispatcher, ship := collisionFixture(t)

	var hits []event.PlayerHitData
	dispatcher.Subscribe(event.PlayerHit, event.ListenerFunc(func(e event.Event) {
		hits = append(hits, e.Data.(event.PlayerHitData))
	}))

	p := projectiles.Acquire()
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 4)
	p.Spawn(ship.Pos, geom.V(0, 0), component.SideEnemy, 3, 100, shape)

	sys.Update(ship)
	if len(hits) != 1 {
		t.Fatalf("PlayerHit dispatched %d times, want 1", len(hits))
	}
	if hits[0].Damage != 3 {
		t.Errorf("hit damage = %d, want 3", hits[0].Damage)
	}
	if projectiles.Len() != 0 {
		t.Error("enemy shot not deactivated after hitting the ship")
	}
}

func TestCollision_InvinciblePlayerIgnoresHits(t *testing.T) {
	sys, projectiles, enemies, dispatcher, ship := collisionFixture(t)
	ship.HitCooldown = 1.0

	hits := 0
	dispatcher.Subscribe(event.PlayerHit, event.ListenerFunc(func(event.Event) { hits++ }))

	p := projectiles.Acquire()
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 4)
	p.Spawn(ship.Pos, geom.V(0, 0), component.SideEnemy, 3, 100, shape)
	spawnTestEnemy(t, enemies, 1, ship.Pos, 50) // ramming hull

	sys.Update(ship)
	if hits != 0 {
		t.Errorf("invincible player took %d hits", hits)
	}
	if projectiles.Len() != 1 {
		t.Error("enemy shot consumed against invincible player")
	}
}

func TestCollision_RammingEnemyIsDestroyedWithoutScore(t *testing.T) {
	sys, _, enemies, dispatcher, ship := collisionFixture(t)

	var destroyed []event.EnemyDestroyedData
	dispatcher.Subscribe(event.EnemyDestroyed, event.ListenerFunc(func(e event.Event) {
		destroyed = append(destroyed, e.Data.(event.EnemyDestroyedData))
	}))
	playerHits := 0
	dispatcher.Subscribe(event.PlayerHit, event.ListenerFunc(func(event.Event) { playerHits++ }))

	spawnTestEnemy(t, enemies, 9, ship.Pos, 50)

	sys.Update(ship)
	if playerHits != 1 {
		t.Errorf("contact dispatched %d PlayerHit events, want 1", playerHits)
	}
	if len(destroyed) != 1 || destroyed[0].ScoreValue != 0 {
		t.Errorf("ramming enemy should be destroyed with zero score, got %+v", destroyed)
	}
	if enemies.Len() != 0 {
		t.Error("ramming enemy not released")
	}
}
