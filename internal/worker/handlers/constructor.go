package worker_handler

import (
	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/mail"
	"github.com/Xenn-00/werkstatt-meister/internal/notify"
	"github.com/Xenn-00/werkstatt-meister/internal/queue"
	course_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/course-repo"
	user_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/user-repo"
	workshop_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/workshop-repo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type WorkerHandler struct {
	db        *pgxpool.Pool
	wr        workshop_repo.WorkshopRepoContract
	cr        course_repo.CourseRepoContract
	resolver  *notify.Resolver
	renderer  *notify.Renderer
	mailer    mail.Mailer
	txManager tx.TxManager
	queue     queue.TaskQueueClient
}

func NewWorkerHandler(db *pgxpool.Pool, redis *redis.Client, mailer mail.Mailer, renderer *notify.Renderer, taskQueue queue.TaskQueueClient) *WorkerHandler {
	wr := workshop_repo.NewWorkshopRepo(db)
	cr := course_repo.NewCourseRepo(db, redis)
	ur := user_repo.NewUserRepo(db)

	return &WorkerHandler{
		db:        db,
		wr:        wr,
		cr:        cr,
		resolver:  notify.NewResolver(wr, cr, ur),
		renderer:  renderer,
		mailer:    mailer,
		txManager: tx.NewPgxTxManager(db),
		queue:     taskQueue,
	}
}
