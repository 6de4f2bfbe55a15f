//go:build wireinject
// +build wireinject

package wire

import (
	"pitchside/internal/challenge"
	chathandler "pitchside/internal/chat/handler"
	"pitchside/internal/chat/repository"
	chatservice "pitchside/internal/chat/service"
	"pitchside/internal/dbmysql"
	"pitchside/internal/scoreboard"

	"github.com/google/wire"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideDatabaseConnection,
		ProvideHub,
		ProvidePublisher,
		dbmysql.NewAccountDirectory,
		dbmysql.NewMembershipDirectory,
		dbmysql.NewChallengeCatalog,
		repository.NewChatRepository,
		chatservice.NewConversationService,
		chathandler.NewChatHandler,
		chathandler.NewStreamHandler,
		scoreboard.NewScoreRepository,
		scoreboard.NewScoreService,
		scoreboard.NewHandler,
		challenge.NewRepository,
		challenge.NewCoordinator,
		challenge.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
