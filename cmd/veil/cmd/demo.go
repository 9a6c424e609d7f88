package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-veil/internal/vm"
)

var vmScenario string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run one of the reference VM scenarios (S5, S6)",
	RunE: func(_ *cobra.Command, _ []string) error {
		switch vmScenario {
		case "S5":
			return demoS5()
		case "S6":
			return demoS6()
		default:
			return fmt.Errorf("unknown scenario %q (want S5 or S6)", vmScenario)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&vmScenario, "scenario", "S5", "scenario to run (S5 or S6)")
}

// demoS5 is the VM arithmetic scenario: EAX=7, EBX=3, ADD gives EAX=10 with
// ZF=0, SF=0; a following INC gives EAX=11.
func demoS5() error {
	s := vm.New(vm.DefaultMemorySize)
	s.Registers[vm.EAX] = 7
	s.Registers[vm.EBX] = 3
	fmt.Println(s.Execute(0x0B)) // ADD
	fmt.Printf("EAX=%d ZF=%v SF=%v\n", s.Registers[vm.EAX], s.Flags.ZF, s.Flags.SF)
	fmt.Println(s.Execute(0x78)) // INC
	fmt.Printf("EAX=%d\n", s.Registers[vm.EAX])
	return nil
}

// demoS6 is the VM stack/call scenario: with EIP=0x100, CALL rel32 pushes
// EIP and advances it; RET restores EIP and ESP.
func demoS6() error {
	s := vm.New(vm.DefaultMemorySize)
	s.EIP = 0x100
	espBefore := s.Registers[vm.ESP]

	fmt.Println(s.Execute(0x30)) // CALL rel32
	fmt.Printf("ESP delta=%d EIP=0x%X stacked=0x%X\n",
		int64(s.Registers[vm.ESP])-int64(espBefore), s.EIP, s.ReadU32(s.Registers[vm.ESP]))

	fmt.Println(s.Execute(0x32)) // RET
	fmt.Printf("EIP=0x%X ESP=0x%X\n", s.EIP, s.Registers[vm.ESP])
	return nil
}
