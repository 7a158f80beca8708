package app_test

import (
	"context"
	. "github.com/onsi/gomega"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"testing"
)

func TestSubscriptionPool_AddUniqueItems(t *testing.T) {
	g := NewGomegaWithT(t)

	pool := app.NewSubscriptionPool()

	g.Expect(pool.Add("greetings", app.NewItemTask())).To(Succeed())
	g.Expect(pool.Add("farewells", app.NewItemTask())).To(Succeed())

	_, ok := pool.Remove("greetings")
	g.Expect(ok).To(BeTrue())
	_, ok = pool.Remove("farewells")
	g.Expect(ok).To(BeTrue())
}

func TestSubscriptionPool_AddingDuplicateItemDoesNotOverrideTheFirstTask(t *testing.T) {
	g := NewGomegaWithT(t)

	pool := app.NewSubscriptionPool()
	first := app.NewItemTask()

	g.Expect(pool.Add("greetings", first)).To(Succeed())

	err := pool.Add("greetings", app.NewItemTask())
	g.Expect(err).To(MatchError(app.ErrAlreadySubscribed))

	task, ok := pool.Remove("greetings")
	g.Expect(ok).To(BeTrue())
	g.Expect(task).To(BeIdenticalTo(first))
}

func TestSubscriptionPool_Remove(t *testing.T) {
	g := NewGomegaWithT(t)

	pool := app.NewSubscriptionPool()
	g.Expect(pool.Add("greetings", app.NewItemTask())).To(Succeed())

	_, ok := pool.Remove("greetings")
	g.Expect(ok).To(BeTrue())

	_, ok = pool.Remove("greetings")
	g.Expect(ok).To(BeFalse())
}

func TestSubscriptionPool_RemoveTaskLeavesOtherTasksAlone(t *testing.T) {
	g := NewGomegaWithT(t)

	pool := app.NewSubscriptionPool()
	stale := app.NewItemTask()
	current := app.NewItemTask()

	g.Expect(pool.Add("greetings", stale)).To(Succeed())
	_, ok := pool.Remove("greetings")
	g.Expect(ok).To(BeTrue())
	g.Expect(pool.Add("greetings", current)).To(Succeed())

	g.Expect(pool.RemoveTask("greetings", stale)).To(BeFalse())

	task, ok := pool.Remove("greetings")
	g.Expect(ok).To(BeTrue())
	g.Expect(task).To(BeIdenticalTo(current))
	g.Expect(pool.RemoveTask("greetings", current)).To(BeFalse())

	g.Expect(pool.Add("greetings", current)).To(Succeed())
	g.Expect(pool.RemoveTask("greetings", current)).To(BeTrue())
	_, ok = pool.Remove("greetings")
	g.Expect(ok).To(BeFalse())
}

func TestItemTask_StopWaitsForRunToReturn(t *testing.T) {
	g := NewGomegaWithT(t)

	task := app.NewItemTask()
	returned := make(chan struct{})
	go task.Run(func(ctx context.Context) {
		<-ctx.Done()
		close(returned)
	})

	task.Stop()
	g.Expect(returned).To(BeClosed())
}
