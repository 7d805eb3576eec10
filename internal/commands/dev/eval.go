package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// CreateEvalCommand creates the /dev eval command
func CreateEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code against the live engine (dangerous)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	).AsDev()
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if ctx.User().ID != config.Get().OwnerID {
			ctx.ReplyEphemeral("❌ **Access denied:** this command answers only to the coven's keeper.")
			return
		}

		// Compiling the script can take a few milliseconds, defer the reply
		ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error loading stdlib: %v", err))
			return
		}

		// Exposed as globals inside the evaluated code
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Engine":  reflect.ValueOf(engine.Get()),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/PancyStudios/CovenBotGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error registering variables: %v", err))
			return
		}

		_, err := i.Eval(`import . "github.com/PancyStudios/CovenBotGo/internal/commands/dev"`)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error importing variables: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncated)"
			}

			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}
