package terminal

const coffeeArt = `      ( (
       ) )
    ........
    |      |]
    \      /
     '----'`

const catArt = `⠀⠀⠀⠀⢀⡴⣆⠀⠀⠀⠀⠀⣠⡀⠀⠀
⠀⠀⠀⣼⣿⡗⠀⠀⠀⠀⠀⣿⣿⣧⠀⠀
⠀⠀⢰⣿⣿⣿⣤⣤⣤⣤⣤⣿⣿⣿⡆⠀
⠀⠀⣿⣿⠉⠀⣿⣿⣿⣿⠀⠉⣿⣿⣿⠀
⠀⠀⢿⣿⣤⣤⣿⠿⠿⣿⣤⣤⣿⣿⡿⠀
⠀⠀⠈⠻⣿⣿⣿⣶⣶⣿⣿⣿⠟⠁⠀⠀`
